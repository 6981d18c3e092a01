package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/alnas-hms/ovr-system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(t *testing.T) (UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	usersMock := mocks.NewMockUserRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewUserService(usersMock, logger), usersMock
}

func validNewUser() *models.User {
	return &models.User{
		Username:     "lab.tech",
		FullName:     "Reem Al-Otaibi",
		Title:        "Lab Technician",
		DepartmentID: 6,
	}
}

func TestCreateUser_HashesPassword(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	user := validNewUser()

	// Ожидания
	usersMock.EXPECT().
		GetByUsername(ctx, "lab.tech").
		Return(nil, models.ErrUserNotFound)
	usersMock.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) (*models.User, error) {
			// В репозиторий уходит хэш, не сам пароль
			assert.NotEqual(t, "s3cret", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
			created := *u
			created.ID = 42
			return &created, nil
		})

	// Действие
	created, err := service.CreateUser(ctx, user, "s3cret", qualitySession())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "lab.tech", created.Username)
}

func TestCreateUser_ShortPasswordRejected(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)
	ctx := context.Background()

	// Действие: до репозитория такой запрос не доходит
	_, err := service.CreateUser(ctx, validNewUser(), "12345", qualitySession())

	// Проверки
	require.Error(t, err)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "password", validationErr.Field)
}

func TestCreateUser_UnknownRoleRejected(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()
	user := validNewUser()
	user.Roles = []string{"admin"}

	_, err := service.CreateUser(ctx, user, "s3cret", qualitySession())

	require.Error(t, err)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "roles", validationErr.Field)
}

func TestCreateUser_UsernameTaken(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().
		GetByUsername(ctx, "lab.tech").
		Return(&models.User{ID: 13, Username: "lab.tech"}, nil)

	// Действие
	_, err := service.CreateUser(ctx, validNewUser(), "s3cret", qualitySession())

	// Проверки
	require.Error(t, err)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)
}

func TestCreateUser_RejectsNonQuality(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)
	ctx := context.Background()

	// Действие
	_, err := service.CreateUser(ctx, validNewUser(), "s3cret", departmentSession(4))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)
}

func TestListUsers_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	users := []*models.User{
		{ID: 7, Username: "quality.lead", Roles: []string{identity.RoleQuality}},
		{ID: 42, Username: "lab.tech", Blocked: true},
	}

	// Ожидания
	usersMock.EXPECT().ListUsers(ctx).Return(users, nil)

	// Действие
	result, err := service.ListUsers(ctx, qualitySession())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, users, result)
}

func TestListUsers_RejectsNonQuality(t *testing.T) {
	service, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := service.ListUsers(ctx, departmentSession(4))

	assert.ErrorIs(t, err, models.ErrNotAuthorized)
}

func TestDeleteUser_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().DeleteUser(ctx, int64(42)).Return(nil)

	// Действие
	err := service.DeleteUser(ctx, 42, qualitySession())

	// Проверки
	require.NoError(t, err)
}

func TestDeleteUser_OwnAccountRejected(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)
	ctx := context.Background()
	actor := qualitySession()

	// Действие: собственную запись удалить нельзя
	err := service.DeleteUser(ctx, actor.UserID, actor)

	// Проверки
	require.Error(t, err)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id", validationErr.Field)
}

func TestDeleteUser_NotFoundPassesThrough(t *testing.T) {
	service, usersMock := newTestUserService(t)
	ctx := context.Background()

	usersMock.EXPECT().DeleteUser(ctx, int64(99)).Return(models.ErrUserNotFound)

	err := service.DeleteUser(ctx, 99, qualitySession())

	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestSetBlocked_Success(t *testing.T) {
	// Подготовка
	service, usersMock := newTestUserService(t)
	ctx := context.Background()

	// Ожидания
	usersMock.EXPECT().SetBlocked(ctx, int64(42), true).Return(nil)

	// Действие
	err := service.SetBlocked(ctx, 42, true, qualitySession())

	// Проверки
	require.NoError(t, err)
}

func TestSetBlocked_OwnAccountRejected(t *testing.T) {
	// Подготовка
	service, _ := newTestUserService(t)
	ctx := context.Background()
	actor := qualitySession()

	// Действие: заблокировать собственную запись нельзя
	err := service.SetBlocked(ctx, actor.UserID, true, actor)

	// Проверки
	require.Error(t, err)
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "id", validationErr.Field)
}

func TestSetBlocked_UnblockOwnAccountAllowed(t *testing.T) {
	// Снятие блокировки с собственной записи ограничением не является
	service, usersMock := newTestUserService(t)
	ctx := context.Background()
	actor := qualitySession()

	usersMock.EXPECT().SetBlocked(ctx, actor.UserID, false).Return(nil)

	err := service.SetBlocked(ctx, actor.UserID, false, actor)

	require.NoError(t, err)
}
