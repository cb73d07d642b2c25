package services

import (
	"errors"
	"strings"

	"backend/config"
	"backend/models"
	"backend/utils"
)

var ErrEmailTaken = errors.New("user already exists")

func RegisterUser(name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:             strings.TrimSpace(name),
		Email:            email,
		Password:         hashedPassword,
		AlertPreferences: models.DefaultAlertPreferences(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, string, error) {
	user, err := FindUserByEmail(email)
	if err != nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid credentials")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
