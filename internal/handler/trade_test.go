package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dotworks/PixieBot_Go/internal/domain"
	"github.com/dotworks/PixieBot_Go/internal/event"
	"github.com/dotworks/PixieBot_Go/internal/ledger"
)

func TestHandleBuyItem(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*mockLedgerService, *mockEventBus)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "not json",
			setupMocks:     func(ml *mockLedgerService, mb *mockEventBus) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing account",
			reqBody:        BuyItemRequest{ItemName: "Pet Food", Quantity: 1},
			setupMocks:     func(ml *mockLedgerService, mb *mockEventBus) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "This field is required",
		},
		{
			name:    "Insufficient funds",
			reqBody: BuyItemRequest{AccountID: "alice", ItemName: "Mystery Box", Quantity: 3},
			setupMocks: func(ml *mockLedgerService, mb *mockEventBus) {
				ml.On("BuyItem", mock.Anything, "alice", "Mystery Box", 3).
					Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughCoinsError,
		},
		{
			name:    "Success publishes event",
			reqBody: BuyItemRequest{AccountID: "alice", ItemName: "Pet Food", Quantity: 2},
			setupMocks: func(ml *mockLedgerService, mb *mockEventBus) {
				ml.On("BuyItem", mock.Anything, "alice", "Pet Food", 2).
					Return(&ledger.PurchaseResult{ItemName: "Pet Food", Quantity: 2, CoinsSpent: 50}, nil)
				mb.On("Publish", mock.Anything, mock.MatchedBy(func(ev event.Event) bool {
					return ev.Type == event.TypeItemBought
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"coins_spent":50`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml := &mockLedgerService{}
			mb := &mockEventBus{}
			tt.setupMocks(ml, mb)

			rec := performJSON(t, HandleBuyItem(ml, mb), http.MethodPost, "/api/v1/store/buy", tt.reqBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			ml.AssertExpectations(t)
			mb.AssertExpectations(t)
		})
	}
}

func TestHandleSellItem(t *testing.T) {
	ml := &mockLedgerService{}
	mb := &mockEventBus{}
	ml.On("SellItem", mock.Anything, "alice", "Copper Sword", 1).
		Return(&ledger.SellResult{ItemName: "Copper Sword", ItemsSold: 1, CoinsGained: 250}, nil)
	mb.On("Publish", mock.Anything, mock.MatchedBy(func(ev event.Event) bool {
		return ev.Type == event.TypeItemSold
	})).Return(nil)

	rec := performJSON(t, HandleSellItem(ml, mb), http.MethodPost, "/api/v1/store/sell",
		SellItemRequest{AccountID: "alice", ItemName: "Copper Sword", Quantity: 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"coins_gained":250`)
	mb.AssertExpectations(t)
}

func TestHandleSellItem_NotOwned(t *testing.T) {
	ml := &mockLedgerService{}
	mb := &mockEventBus{}
	ml.On("SellItem", mock.Anything, "alice", "Copper Sword", 1).
		Return(nil, domain.ErrItemNotOwned)

	rec := performJSON(t, HandleSellItem(ml, mb), http.MethodPost, "/api/v1/store/sell",
		SellItemRequest{AccountID: "alice", ItemName: "Copper Sword", Quantity: 1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgItemNotOwnedError)
	mb.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHandleGiveCoins(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        GiveCoinsRequest
		serviceErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			reqBody:        GiveCoinsRequest{FromID: "alice", ToID: "bob", Amount: 100},
			expectedStatus: http.StatusOK,
			expectedBody:   `"remaining_today":400`,
		},
		{
			name:           "Daily limit",
			reqBody:        GiveCoinsRequest{FromID: "alice", ToID: "bob", Amount: 100},
			serviceErr:     domain.ErrDailyLimitReached,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgDailyLimitError,
		},
		{
			name:           "Self transfer",
			reqBody:        GiveCoinsRequest{FromID: "alice", ToID: "alice", Amount: 100},
			serviceErr:     domain.ErrInvalidRecipient,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRecipientError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ml := &mockLedgerService{}
			mb := &mockEventBus{}
			if tt.serviceErr != nil {
				ml.On("GiveCoins", mock.Anything, tt.reqBody.FromID, tt.reqBody.ToID, tt.reqBody.Amount).
					Return(nil, tt.serviceErr)
			} else {
				ml.On("GiveCoins", mock.Anything, tt.reqBody.FromID, tt.reqBody.ToID, tt.reqBody.Amount).
					Return(&ledger.GiveResult{Amount: tt.reqBody.Amount, RemainingToday: 400}, nil)
				mb.On("Publish", mock.Anything, mock.MatchedBy(func(ev event.Event) bool {
					return ev.Type == event.TypeCoinsGiven
				})).Return(nil)
			}

			rec := performJSON(t, HandleGiveCoins(ml, mb), http.MethodPost, "/api/v1/coins/give", tt.reqBody)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			ml.AssertExpectations(t)
		})
	}
}

func TestHandleGiftItem(t *testing.T) {
	ml := &mockLedgerService{}
	mb := &mockEventBus{}
	ml.On("GiftItem", mock.Anything, "alice", "bob", "Pet Food").Return(nil)
	mb.On("Publish", mock.Anything, mock.MatchedBy(func(ev event.Event) bool {
		return ev.Type == event.TypeItemGifted
	})).Return(nil)

	rec := performJSON(t, HandleGiftItem(ml, mb), http.MethodPost, "/api/v1/item/gift",
		GiftItemRequest{FromID: "alice", ToID: "bob", ItemName: "Pet Food"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Item gifted")
	mb.AssertExpectations(t)
}
