package services

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Age         int      `json:"age"`
	HeightCm    float64  `json:"height_cm"`
	WeightKg    float64  `json:"weight_kg"`
	Allergies   []string `json:"allergies"`
	Pathologies []string `json:"pathologies"`
}

func GetUserProfile(ctx context.Context, userID string) (*models.User, error) {
	snap, err := config.Store.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, err
	}
	user.ID = snap.Ref.ID
	if user.Disabled {
		return nil, errors.New("user not found or disabled")
	}
	return &user, nil
}

func UpdateUserProfile(ctx context.Context, userID string, input ProfileInput) (*models.User, error) {
	user, err := GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.Allergies != nil {
		user.Allergies = input.Allergies
	}
	if input.Pathologies != nil {
		user.Pathologies = input.Pathologies
	}

	// BMI is derived: it always tracks the height/weight stored with it.
	if bmi, err := utils.CalculateBMI(user.HeightCm, user.WeightKg); err == nil {
		user.BMI = bmi
	} else {
		user.BMI = 0
	}

	if _, err := config.Store.Collection("users").Doc(userID).Set(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func DeleteUser(ctx context.Context, userID string) error {
	user, err := GetUserProfile(ctx, userID)
	if err != nil {
		return err
	}
	user.Disabled = true
	_, err = config.Store.Collection("users").Doc(userID).Set(ctx, user)
	return err
}
