package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUserByID(ctx context.Context, id bson.ObjectID) (*models.User, error) {
	user, found, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apierror.NewInternal("Failed to look up user", err)
	}
	if !found {
		return nil, apierror.NewNotFound("User not found")
	}
	return user, nil
}

func (s *UserService) SetAddress(ctx context.Context, id bson.ObjectID, address string) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Address = address
	user.SetTimestamps()
	if err := s.users.Save(ctx, user); err != nil {
		return nil, apierror.NewInternal("Failed to update address", err)
	}
	return user, nil
}
