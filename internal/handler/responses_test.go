package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dotworks/PixieBot_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound, ErrMsgAccountNotFoundError},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughCoinsError},
		{"daily limit", domain.ErrDailyLimitReached, http.StatusBadRequest, ErrMsgDailyLimitError},
		{"item not owned", domain.ErrItemNotOwned, http.StatusBadRequest, ErrMsgItemNotOwnedError},
		{"catalog missing", domain.ErrCatalogMissing, http.StatusBadRequest, ErrMsgItemNotFoundError},
		{"already enchanted", domain.ErrAlreadyEnchanted, http.StatusBadRequest, ErrMsgAlreadyEnchantedError},
		{"already crafting", domain.ErrAlreadyCrafting, http.StatusConflict, ErrMsgAlreadyCraftingError},
		{"craft not ready", domain.ErrCraftNotReady, http.StatusConflict, ErrMsgCraftNotReadyError},
		{"no box owned", domain.ErrNoBoxOwned, http.StatusBadRequest, ErrMsgNoBoxOwnedError},
		{"external effect", domain.ErrExternalEffectFailed, http.StatusBadGateway, ErrMsgExternalEffectError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidInputError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_Wrapped(t *testing.T) {
	err := fmt.Errorf("collect craft: %w", fmt.Errorf("%w: ready in 15 minutes", domain.ErrCraftNotReady))

	code, msg := mapServiceErrorToUserMessage(err)

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, ErrMsgCraftNotReadyError, msg)
}

func TestMapServiceErrorToUserMessage_ShortUnknownPassesThrough(t *testing.T) {
	code, msg := mapServiceErrorToUserMessage(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "boom", msg)
}

func TestMapServiceErrorToUserMessage_LongUnknownIsGeneric(t *testing.T) {
	code, msg := mapServiceErrorToUserMessage(errors.New(strings.Repeat("x", 300)))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, ErrMsgGenericServerError, msg)
}

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(BuyItemRequest{ItemName: "", Quantity: 0})

	fields := FormatValidationError(err)

	assert.Equal(t, "This field is required", fields["accountid"])
	assert.Equal(t, "This field is required", fields["itemname"])
	assert.Equal(t, "Must be at least 1", fields["quantity"])
}
