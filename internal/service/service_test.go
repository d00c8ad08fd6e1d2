package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/uchoabruno/bgls/internal/repository"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestConsoleServiceSaveAssignsID(t *testing.T) {
	svc := NewConsoleService(repository.NewInMemoryConsoleStor(), testLogger())

	saved, err := svc.Save(&ConsoleDTO{Name: strPtr("NES")})
	require.NoError(t, err)
	require.NotNil(t, saved.ID)
	assert.Equal(t, uint64(1), *saved.ID)
}

func TestConsoleServicePartialUpdateKeepsOmittedFields(t *testing.T) {
	stor := repository.NewInMemoryConsoleStor()
	svc := NewConsoleService(stor, testLogger())

	saved, err := svc.Save(&ConsoleDTO{
		Name:             strPtr("NES"),
		Image:            []byte{0xca, 0xfe},
		ImageContentType: strPtr("image/png"),
	})
	require.NoError(t, err)

	patched, err := svc.PartialUpdate(&ConsoleDTO{ID: saved.ID, Name: strPtr("Famicom")})
	require.NoError(t, err)
	assert.Equal(t, "Famicom", *patched.Name)
	assert.Equal(t, []byte{0xca, 0xfe}, patched.Image)
	assert.Equal(t, "image/png", *patched.ImageContentType)
}

func TestConsoleServicePartialUpdateMissingEntity(t *testing.T) {
	svc := NewConsoleService(repository.NewInMemoryConsoleStor(), testLogger())

	_, err := svc.PartialUpdate(&ConsoleDTO{ID: u64Ptr(42), Name: strPtr("NES")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGameServicePartialUpdateKeepsConsole(t *testing.T) {
	stor := repository.NewInMemoryGameStor()
	svc := NewGameService(stor, testLogger())

	saved, err := svc.Save(&GameDTO{
		Name:    strPtr("Zelda"),
		Console: &ConsoleRefDTO{ID: u64Ptr(1)},
	})
	require.NoError(t, err)

	patched, err := svc.PartialUpdate(&GameDTO{ID: saved.ID, Name: strPtr("Zelda II")})
	require.NoError(t, err)
	assert.Equal(t, "Zelda II", *patched.Name)
	require.NotNil(t, patched.Console)
	assert.Equal(t, uint64(1), *patched.Console.ID)
}

func TestItemServicePartialUpdateOverlaysKeys(t *testing.T) {
	stor := repository.NewInMemoryItemStor()
	svc := NewItemService(stor, testLogger())

	saved, err := svc.Save(&ItemDTO{OwnerID: u64Ptr(10), GameID: u64Ptr(5)})
	require.NoError(t, err)

	patched, err := svc.PartialUpdate(&ItemDTO{ID: saved.ID, LendedToID: u64Ptr(11)})
	require.NoError(t, err)
	require.NotNil(t, patched.OwnerID)
	assert.Equal(t, uint64(10), *patched.OwnerID)
	require.NotNil(t, patched.LendedToID)
	assert.Equal(t, uint64(11), *patched.LendedToID)
	require.NotNil(t, patched.GameID)
	assert.Equal(t, uint64(5), *patched.GameID)
}

func TestItemServicePartialUpdateAcceptsNestedReference(t *testing.T) {
	stor := repository.NewInMemoryItemStor()
	svc := NewItemService(stor, testLogger())

	saved, err := svc.Save(&ItemDTO{OwnerID: u64Ptr(10)})
	require.NoError(t, err)

	patched, err := svc.PartialUpdate(&ItemDTO{
		ID:   saved.ID,
		Game: &GameRefDTO{ID: u64Ptr(5)},
	})
	require.NoError(t, err)
	require.NotNil(t, patched.GameID)
	assert.Equal(t, uint64(5), *patched.GameID)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	users := repository.NewInMemoryUserStor(nil)
	svc := NewAuthService(users, testLogger())

	token, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.Authenticate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.False(t, user.Admin)
	assert.NotEqual(t, "s3cret", user.Password)

	fresh, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, token, fresh)

	// The previous token is invalidated by a new login.
	_, err = svc.Authenticate(token)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAuthLoginFailures(t *testing.T) {
	users := repository.NewInMemoryUserStor(nil)
	svc := NewAuthService(users, testLogger())

	_, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, ErrLoginUserNotFound)

	_, err = svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrLoginPasswordDoesNotMatch)
}

func TestAuthAuthenticateUnknownToken(t *testing.T) {
	svc := NewAuthService(repository.NewInMemoryUserStor(nil), testLogger())

	_, err := svc.Authenticate("nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
