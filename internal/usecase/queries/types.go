package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView is what the auth middleware needs to admit a request.
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type ProfileView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Nickname  string     `json:"nickname"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type MeView struct {
	User    *AuthorizedUserView `json:"user"`
	Profile *ProfileView        `json:"profile"`
}

type ProductView struct {
	ID             uuid.UUID `json:"id"`
	SellerID       uuid.UUID `json:"seller_id"`
	SellerNickname *string   `json:"seller_nickname,omitempty"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Price          int64     `json:"price"`
	Location       string    `json:"location"`
	ImageURL       *string   `json:"image_url,omitempty"`
	Status         string    `json:"status"`
	LikeCount      int64     `json:"like_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ProductListItem struct {
	ID        uuid.UUID `json:"id"`
	SellerID  uuid.UUID `json:"seller_id"`
	Title     string    `json:"title"`
	Price     int64     `json:"price"`
	Location  string    `json:"location"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type ChatRoomView struct {
	ID              uuid.UUID  `json:"id"`
	ProductID       uuid.UUID  `json:"product_id"`
	BuyerID         uuid.UUID  `json:"buyer_id"`
	SellerID        uuid.UUID  `json:"seller_id"`
	SaleConfirmedAt *time.Time `json:"sale_confirmed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (v *ChatRoomView) IsParticipant(userID uuid.UUID) bool {
	return v.BuyerID == userID || v.SellerID == userID
}

type ProductSummary struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
	ImageURL *string   `json:"image_url,omitempty"`
	Status   string    `json:"status"`
}

type ChatRoomListItem struct {
	ChatRoomView
	Product             ProductSummary `json:"product"`
	CounterpartID       uuid.UUID      `json:"counterpart_id"`
	CounterpartNickname *string        `json:"counterpart_nickname,omitempty"`
	LastMessage         *string        `json:"last_message,omitempty"`
	LastMessageAt       *time.Time     `json:"last_message_at,omitempty"`
	UnreadCount         int64          `json:"unread_count"`
}

type MessageView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SenderID  uuid.UUID `json:"sender_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ReviewView struct {
	ID               uuid.UUID  `json:"id"`
	ProductID        uuid.UUID  `json:"product_id"`
	ProductTitle     string     `json:"product_title,omitempty"`
	ReviewerID       *uuid.UUID `json:"reviewer_id,omitempty"`
	ReviewerNickname *string    `json:"reviewer_nickname,omitempty"`
	RevieweeID       uuid.UUID  `json:"reviewee_id"`
	Rating           int32      `json:"rating"`
	Comment          *string    `json:"comment,omitempty"`
	IsAnonymous      bool       `json:"is_anonymous"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Anonymize drops everything that identifies the reviewer.
func (v *ReviewView) Anonymize() {
	if !v.IsAnonymous {
		return
	}
	v.ReviewerID = nil
	v.ReviewerNickname = nil
}

type RatingSummary struct {
	UserID  uuid.UUID `json:"user_id"`
	Average float64   `json:"average"`
	Count   int64     `json:"count"`
}

type LikeStatus struct {
	ProductID uuid.UUID `json:"product_id"`
	Count     int64     `json:"count"`
	Liked     bool      `json:"liked"`
}

type DecisionView struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason"`
}

type EligibilityView struct {
	RoomID           uuid.UUID    `json:"room_id"`
	ProductID        uuid.UUID    `json:"product_id"`
	SaleConfirmation DecisionView `json:"sale_confirmation"`
	Review           DecisionView `json:"review"`
}
