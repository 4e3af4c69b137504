package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clasesya/clasesya-api/db"
	"github.com/clasesya/clasesya-api/models"
	"github.com/clasesya/clasesya-api/utils"
)

type profileUpdateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	// Student fields
	PreferredSubject *string `json:"preferred_subject"`
	LearningGoals    *string `json:"learning_goals"`

	// Teacher fields
	Subjects        *string                   `json:"subjects"`
	HourlyRateCents *int64                    `json:"hourly_rate_cents"`
	Bio             *string                   `json:"bio"`
	Availability    *[]models.AvailabilityTag `json:"availability"`
}

// UpdateProfile edits the account and its role-specific profile. The profile
// row is created on first edit when signup predates profile creation.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	input := new(profileUpdateInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.HourlyRateCents != nil && *input.HourlyRateCents < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Hourly rate cannot be negative",
		})
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if input.Name != "" {
			user.Name = input.Name
		}
		if input.Email != "" {
			user.Email = input.Email
		}
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		switch user.UserType {
		case models.UserTypeStudent:
			var profile models.StudentProfile
			// Lazily create the profile on first edit
			if err := tx.Where(models.StudentProfile{UserID: user.ID}).
				FirstOrCreate(&profile).Error; err != nil {
				return err
			}
			if input.PreferredSubject != nil {
				profile.PreferredSubject = *input.PreferredSubject
			}
			if input.LearningGoals != nil {
				profile.LearningGoals = *input.LearningGoals
			}
			return tx.Save(&profile).Error

		case models.UserTypeTeacher:
			var profile models.TeacherProfile
			if err := tx.Where(models.TeacherProfile{UserID: user.ID}).
				FirstOrCreate(&profile).Error; err != nil {
				return err
			}
			if input.Subjects != nil {
				profile.Subjects = *input.Subjects
			}
			if input.HourlyRateCents != nil {
				profile.HourlyRateCents = *input.HourlyRateCents
			}
			if input.Bio != nil {
				profile.Bio = *input.Bio
			}
			if input.Availability != nil {
				if err := profile.SetAvailabilityTags(*input.Availability); err != nil {
					return err
				}
			}
			return tx.Save(&profile).Error
		}
		return nil
	})
	if err != nil {
		if err == models.ErrUnknownAvailabilityTag {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown availability tag",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}

	return GetUserProfile(c)
}

// UploadAvatar stores a teacher's profile picture and saves the hosted URL.
func UploadAvatar(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var profile models.TeacherProfile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Teacher profile not found",
		})
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Avatar file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("teacher-%d", profile.ID), "avatars")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&profile).Update("avatar_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save avatar URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"avatar_url": url,
	})
}
