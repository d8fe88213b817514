package handlers

import "github.com/go-playground/validator/v10"

// validate is shared by every handler that checks request DTOs.
var validate = validator.New()
