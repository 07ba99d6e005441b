package hiscores

import (
	"context"
	"strings"
	"testing"

	coreerrors "runebot-api/core/errors"

	"runebot-api/core/domain"
	"runebot-api/core/interfaces"
	"runebot-api/pkg/config"
)

func newTestService(client interfaces.HTTPClient) *Service {
	deps := interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
	}
	return NewService(deps, config.NewHiscoresConfig("https://hiscores.example", 12))
}

// validBody builds a well-formed index_lite response with the given
// overrides applied by field name.
func validBody(overrides map[string]string) string {
	lines := make([]string, len(FieldOrder))
	for i, field := range FieldOrder {
		line := "-1,-1"
		if i < 24 {
			line = "100000,50,101333"
		}
		if v, ok := overrides[field]; ok {
			line = v
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n") + "\n"
}

func TestLookup_ParsesSkillEntries(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			body := validBody(map[string]string{
				"Attack": "5000,99,13034431",
			})
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
	service := newTestService(client)

	row, err := service.Lookup(context.Background(), domain.GameModeNormal, "Zezima")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	attack, ok := row.Get("Attack")
	if !ok {
		t.Fatal("expected Attack entry")
	}
	if attack.Rank != 5000 || attack.Level != 99 || attack.Experience != 13034431 {
		t.Errorf("unexpected entry %+v", attack)
	}
}

func TestLookup_ActivityEntriesDefaultUnrankedExperience(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: validBody(nil)}, nil
		},
	}
	service := newTestService(client)

	row, err := service.Lookup(context.Background(), domain.GameModeNormal, "Zezima")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	zulrah, ok := row.Get("Zulrah")
	if !ok {
		t.Fatal("expected Zulrah entry")
	}
	if zulrah.Experience != domain.UnrankedMarker {
		t.Errorf("expected unranked experience, got %d", zulrah.Experience)
	}
}

func TestLookup_UsesModeSpecificEndpoint(t *testing.T) {
	var requested string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			requested = url
			return &mockResponse{statusCode: 200, body: validBody(nil)}, nil
		},
	}
	service := newTestService(client)

	_, err := service.Lookup(context.Background(), domain.GameModeIronman, "Zezima")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(requested, "m=hiscore_oldschool_ironman") {
		t.Errorf("expected ironman endpoint, got %q", requested)
	}
	if !strings.HasSuffix(requested, "index_lite.ws?player=Zezima") {
		t.Errorf("unexpected endpoint %q", requested)
	}
}

func TestLookup_NormalModeAbsentPlayer(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, &coreerrors.NotFoundError{Slug: url}
		},
	}
	service := newTestService(client)

	_, err := service.Lookup(context.Background(), domain.GameModeNormal, "Nobody")
	if !coreerrors.IsNoHiscoreData(err) {
		t.Errorf("expected NoHiscoreDataError, got %v", err)
	}
}

func TestLookup_PlayerExistsOnlyUnderNormal(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.Contains(url, "m=hiscore_oldschool_ultimate") {
				return nil, &coreerrors.NotFoundError{Slug: url}
			}
			return &mockResponse{statusCode: 200, body: validBody(nil)}, nil
		},
	}
	service := newTestService(client)

	_, err := service.Lookup(context.Background(), domain.GameModeUltimateIronman, "Zezima")
	if !coreerrors.IsNoGameModeData(err) {
		t.Errorf("expected NoGameModeDataError, got %v", err)
	}
}

func TestLookup_PlayerNowhere(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, &coreerrors.NotFoundError{Slug: url}
		},
	}
	service := newTestService(client)

	_, err := service.Lookup(context.Background(), domain.GameModeIronman, "Nobody")
	if !coreerrors.IsNoHiscoreData(err) {
		t.Errorf("expected NoHiscoreDataError, got %v", err)
	}
}

func TestLookup_SchemaMismatch(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: "1,2,3\n4,5,6\n"}, nil
		},
	}
	service := newTestService(client)

	_, err := service.Lookup(context.Background(), domain.GameModeNormal, "Zezima")
	if !coreerrors.IsSchemaMismatch(err) {
		t.Errorf("expected SchemaMismatchError, got %v", err)
	}
}

func TestLookup_UsernameValidation(t *testing.T) {
	service := newTestService(&mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			t.Error("request made for invalid username")
			return nil, nil
		},
	})

	cases := []string{
		"",
		"ThirteenChars",
		"bad,name",
		"what?",
		"slash/name",
	}
	for _, username := range cases {
		_, err := service.Lookup(context.Background(), domain.GameModeNormal, username)
		if !coreerrors.IsUsernameInvalid(err) {
			t.Errorf("username %q: expected UsernameInvalidError, got %v", username, err)
		}
	}
}

func TestLookup_EscapesUsername(t *testing.T) {
	var requested string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			requested = url
			return &mockResponse{statusCode: 200, body: validBody(nil)}, nil
		},
	}
	service := newTestService(client)

	_, err := service.Lookup(context.Background(), domain.GameModeNormal, "lynx titan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(requested, "player=lynx+titan") {
		t.Errorf("expected escaped username, got %q", requested)
	}
}

func TestParseEntry_MalformedLines(t *testing.T) {
	cases := []string{"", "42", "abc,1", "1,abc", "1,2,abc"}
	for _, line := range cases {
		if _, err := parseEntry(line); err == nil {
			t.Errorf("expected error for line %q", line)
		}
	}
}
