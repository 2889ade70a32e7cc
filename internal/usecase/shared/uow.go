package shared

import (
	"context"
	"time"

	"marketplace-api/internal/domain/chat"
	"marketplace-api/internal/domain/product"
	"marketplace-api/internal/domain/profile"
	"marketplace-api/internal/domain/review"
	"marketplace-api/internal/domain/user"
	sqlc "marketplace-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Repositories returned by Tx are bound to the transaction.
type Tx interface {
	Users() UserRepository
	Profiles() ProfileRepository
	Products() ProductRepository
	ChatRooms() ChatRoomRepository
	Messages() MessageRepository
	Reviews() ReviewRepository
	Likes() LikeRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	ChatRoomByID(ctx context.Context, id uuid.UUID) (*ChatRoomSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
}

type ProfileRepository interface {
	Create(ctx context.Context, p *profile.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error)
	Update(ctx context.Context, p *profile.Profile) error
}

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) error
	// FindForUpdate locks the row until the transaction ends.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error)
	Update(ctx context.Context, p *product.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status product.Status, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ChatRoomRepository interface {
	Create(ctx context.Context, room *chat.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*chat.Room, error)
	FindForUpdate(ctx context.Context, id uuid.UUID) (*chat.Room, error)
	FindByParticipants(ctx context.Context, productID, buyerID, sellerID uuid.UUID) (*chat.Room, error)
	// FindConfirmedByProduct returns nil without error when no room holds the sale.
	FindConfirmedByProduct(ctx context.Context, productID uuid.UUID) (*chat.Room, error)
	// ConfirmSale persists room.SaleConfirmedAt only if the room is still open and no
	// sibling is confirmed. A lost race yields a CONDITION_FAILED or DUPLICATE_KEY error.
	ConfirmSale(ctx context.Context, room *chat.Room) error
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *chat.Message) error
	MarkRead(ctx context.Context, roomID, readerID uuid.UUID) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*review.Review, error)
	Update(ctx context.Context, rev *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, productID, reviewerID uuid.UUID) (bool, error)
}

type LikeRepository interface {
	// Insert reports false when the like already existed.
	Insert(ctx context.Context, productID, userID uuid.UUID, at time.Time) (bool, error)
	// Delete reports false when there was nothing to remove.
	Delete(ctx context.Context, productID, userID uuid.UUID) (bool, error)
}
