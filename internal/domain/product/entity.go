package product

import (
	"net/url"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	id        uuid.UUID
	sellerID  uuid.UUID
	title     Title
	content   Content
	price     Price
	location  Location
	imageURL  *string
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

type Fields struct {
	Title    Title
	Content  Content
	Price    Price
	Location Location
	ImageURL *string
}

// Patch carries optional changes. ClearImage removes the image even when ImageURL is nil.
type Patch struct {
	Title      *Title
	Content    *Content
	Price      *Price
	Location   *Location
	ImageURL   *string
	ClearImage bool
}

func NewProduct(sellerID uuid.UUID, f Fields, now time.Time) (*Product, error) {
	if err := validateImageURL(f.ImageURL); err != nil {
		return nil, err
	}
	return &Product{
		id:        uuid.New(),
		sellerID:  sellerID,
		title:     f.Title,
		content:   f.Content,
		price:     f.Price,
		location:  f.Location,
		imageURL:  f.ImageURL,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProduct(
	id, sellerID uuid.UUID,
	f Fields,
	status Status,
	createdAt, updatedAt time.Time,
) *Product {
	return &Product{
		id:        id,
		sellerID:  sellerID,
		title:     f.Title,
		content:   f.Content,
		price:     f.Price,
		location:  f.Location,
		imageURL:  f.ImageURL,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Product) Apply(actor uuid.UUID, patch Patch, now time.Time) error {
	if !p.IsSeller(actor) {
		return ErrNotProductSeller
	}
	if err := validateImageURL(patch.ImageURL); err != nil {
		return err
	}
	if patch.Title != nil {
		p.title = *patch.Title
	}
	if patch.Content != nil {
		p.content = *patch.Content
	}
	if patch.Price != nil {
		p.price = *patch.Price
	}
	if patch.Location != nil {
		p.location = *patch.Location
	}
	if patch.ClearImage {
		p.imageURL = nil
	} else if patch.ImageURL != nil {
		p.imageURL = patch.ImageURL
	}
	p.updatedAt = now
	return nil
}

// ChangeStatus is the seller's manual toggle. A product whose sale was confirmed
// through a chat room stays sold, otherwise the buyer would lose review eligibility.
func (p *Product) ChangeStatus(actor uuid.UUID, next Status, hasConfirmedSale bool, now time.Time) error {
	if !p.IsSeller(actor) {
		return ErrNotProductSeller
	}
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if p.status == StatusSold && next != StatusSold && hasConfirmedSale {
		return ErrSaleLocked
	}
	p.status = next
	p.updatedAt = now
	return nil
}

// MarkSold is applied by sale confirmation, which has already checked the actor.
func (p *Product) MarkSold(now time.Time) {
	p.status = StatusSold
	p.updatedAt = now
}

func (p *Product) CanDelete(actor uuid.UUID, isAdmin bool) bool {
	return isAdmin || p.IsSeller(actor)
}

func (p *Product) IsSeller(actor uuid.UUID) bool {
	return p.sellerID == actor
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) SellerID() uuid.UUID  { return p.sellerID }
func (p *Product) Title() Title         { return p.title }
func (p *Product) Content() Content     { return p.content }
func (p *Product) Price() Price         { return p.price }
func (p *Product) Location() Location   { return p.location }
func (p *Product) ImageURL() *string    { return p.imageURL }
func (p *Product) Status() Status       { return p.status }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func validateImageURL(s *string) error {
	if s == nil {
		return nil
	}
	u, err := url.Parse(*s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidImageURL
	}
	return nil
}
