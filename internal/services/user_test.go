package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/user-auth-api/internal/models"
	"github.com/sbilibin2017/user-auth-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestUserService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

	expected := []models.UserDB{
		{ID: 1, Name: "Alice42", Address: "Address17"},
		{ID: 2, Name: "Alice7", Address: "Address901"},
	}
	mockReader.EXPECT().List(gomock.Any()).Return(expected, nil)

	users, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestUserService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	svc := services.NewUserService(mockReader, services.NewMockUserWriter(ctrl))

	mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

	users, err := svc.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, users)
}

func TestUserService_AddRandom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(services.NewMockUserReader(ctrl), mockWriter)

	var savedName, savedAddress string
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, name, address string) (int64, error) {
			savedName = name
			savedAddress = address
			return 5, nil
		})

	user, err := svc.AddRandom(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, savedName, user.Name)
	assert.Equal(t, savedAddress, user.Address)
	assert.True(t, strings.HasPrefix(user.Name, "Alice"))
	assert.True(t, strings.HasPrefix(user.Address, "Address"))
}

func TestUserService_AddRandom_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockUserWriter(ctrl)
	svc := services.NewUserService(services.NewMockUserReader(ctrl), mockWriter)

	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("insert failed"))

	user, err := svc.AddRandom(context.Background())
	assert.Error(t, err)
	assert.Nil(t, user)
}
