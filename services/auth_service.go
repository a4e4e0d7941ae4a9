package services

import (
	"context"
	"errors"
	"time"

	"google.golang.org/api/iterator"

	"backend/config"
	"backend/models"
	"backend/utils"
)

var ErrUserNotFound = errors.New("user not found")

func RegisterUser(ctx context.Context, email, password, firstName, lastName string) (string, error) {
	if _, err := FindUserByEmail(ctx, email); err == nil {
		return "", errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	user := models.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: firstName,
		LastName:  lastName,
		Role:      "patient",
		Disabled:  false,
		CreatedAt: time.Now(),
	}

	doc := config.Store.Collection("users").NewDoc()
	if _, err := doc.Set(ctx, user); err != nil {
		return "", err
	}
	return doc.ID, nil
}

func AuthenticateUser(ctx context.Context, email, password string) (string, error) {
	user, err := FindUserByEmail(ctx, email)
	if err != nil || user.Disabled {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	doc, err := config.Store.Collection("users").
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user models.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = doc.Ref.ID
	return &user, nil
}
