package test_functional

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TokenResp struct {
	Token string `json:"token"`
}

// registerUser creates a throwaway account and returns its API token.
// Logins carry a nanosecond suffix so reruns against the same database
// never collide on the unique login column.
func registerUser(t *testing.T, ctx context.Context) string {
	t.Helper()

	u := AppBaseURL
	u.Path = "/auth/register"

	login := fmt.Sprintf("runner%d", time.Now().UnixNano())
	resp, err := resty.New().
		R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetResult(&TokenResp{}).
		SetBody(fmt.Sprintf(`
		{"login": "%s", "email": "%s@example.com", "password": "111111111111"}
	`, login, login)).
		Post(u.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	got, ok := resp.Result().(*TokenResp)
	require.True(t, ok)
	require.NotEmpty(t, got.Token)
	return got.Token
}

func TestRegister(t *testing.T) {
	u := AppBaseURL
	u.Path = "/auth/register"

	t.Run("successful register", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		registerUser(t, ctx)
	})

	t.Run("bad body", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		resp, err := resty.New().
			R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(`
			{"something": "???"}
		`).
			Post(u.String())
		assert.Nil(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})
}

func TestConsoleCrud(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	token := registerUser(t, ctx)
	cl := resty.New().SetHeader("X-Token", token).SetHeader("Content-Type", "application/json")

	createURL := AppBaseURL
	createURL.Path = "/api/consoles"

	type ConsoleResp struct {
		ID   *uint64 `json:"id"`
		Name *string `json:"name"`
	}

	resp, err := cl.R().
		SetContext(ctx).
		SetResult(&ConsoleResp{}).
		SetBody(`{"name": "Functional Console"}`).
		Post(createURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	created, ok := resp.Result().(*ConsoleResp)
	require.True(t, ok)
	require.NotNil(t, created.ID)
	assert.NotEmpty(t, resp.Header().Get("Location"))

	//////

	getURL := AppBaseURL
	getURL.Path = fmt.Sprintf("/api/consoles/%d", *created.ID)

	resp, err = cl.R().
		SetContext(ctx).
		SetResult(&ConsoleResp{}).
		Get(getURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	got, ok := resp.Result().(*ConsoleResp)
	require.True(t, ok)
	assert.Equal(t, "Functional Console", *got.Name)

	//////

	resp, err = cl.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/merge-patch+json").
		SetResult(&ConsoleResp{}).
		SetBody(fmt.Sprintf(`{"id": %d, "name": "Patched Console"}`, *created.ID)).
		Patch(getURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	patched, ok := resp.Result().(*ConsoleResp)
	require.True(t, ok)
	assert.Equal(t, "Patched Console", *patched.Name)

	//////

	listURL := AppBaseURL
	listURL.Path = "/api/consoles"
	listURL.RawQuery = "page=0&size=5&sort=name,asc"

	resp, err = cl.R().
		SetContext(ctx).
		Get(listURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.NotEmpty(t, resp.Header().Get("X-Total-Count"))
	assert.NotEmpty(t, resp.Header().Get("Link"))

	//////

	resp, err = cl.R().
		SetContext(ctx).
		Delete(getURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = cl.R().
		SetContext(ctx).
		Get(getURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestGameWritesAreAdminOnly(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	token := registerUser(t, ctx)

	u := AppBaseURL
	u.Path = "/api/games"

	resp, err := resty.New().
		R().
		SetHeader("X-Token", token).
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetBody(`{"name": "Forbidden Game", "console": {"id": 1}}`).
		Post(u.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
}

func TestItemLifecycle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	token := registerUser(t, ctx)
	cl := resty.New().SetHeader("X-Token", token).SetHeader("Content-Type", "application/json")

	createURL := AppBaseURL
	createURL.Path = "/api/items"

	type ItemResp struct {
		ID *uint64 `json:"id"`
	}

	resp, err := cl.R().
		SetContext(ctx).
		SetResult(&ItemResp{}).
		SetBody(`{}`).
		Post(createURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	created, ok := resp.Result().(*ItemResp)
	require.True(t, ok)
	require.NotNil(t, created.ID)

	itemURL := AppBaseURL
	itemURL.Path = fmt.Sprintf("/api/items/%d", *created.ID)

	resp, err = cl.R().
		SetContext(ctx).
		Get(itemURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = cl.R().
		SetContext(ctx).
		Delete(itemURL.String())
	require.Nil(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
