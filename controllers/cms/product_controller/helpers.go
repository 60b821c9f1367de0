package product_controller

import (
	"context"
	"errors"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/google/uuid"
)

var errUnknownCategory = errors.New("category does not exist")

// categoryName resolves the denormalised category name. A nil id clears it.
func categoryName(ctx context.Context, id *uuid.UUID) (string, error) {
	if id == nil {
		return "", nil
	}
	var cat models.Category
	if err := config.DB.WithContext(ctx).Select("id", "name").First(&cat, "id = ?", *id).Error; err != nil {
		if utils.IsNotFound(err) {
			return "", errUnknownCategory
		}
		return "", err
	}
	return cat.Name, nil
}

func categoryFieldError() map[string]string {
	return map[string]string{"categoryId": "Category does not exist"}
}
