// Package store persists generated entities through gorm and implements the
// engine's collaborator interfaces.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"shop-seeder/internal/gen"
)

// Store is the gorm-backed persistence collaborator.
type Store struct {
	db *gorm.DB
}

// New wraps a gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema applies the required database schema.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&Product{},
		&Attachment{},
		&Customer{},
		&Order{},
		&OrderItem{},
		&Review{},
		&ReviewMeta{},
	)
}

// --- gen.Catalog ---

func (s *Store) CreateProduct(ctx context.Context, draft gen.ProductDraft) (uint, error) {
	p := Product{
		Title:    draft.Title,
		Category: draft.Category,
		SKU:      draft.SKU,
		Content:  draft.Content,
		Excerpt:  draft.Excerpt,
		Price:    draft.Price,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (s *Store) TitleExists(ctx context.Context, title string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Product{}).Where("title = ?", title).Count(&count).Error
	return count > 0, err
}

func (s *Store) ProductIDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := s.db.WithContext(ctx).Model(&Product{}).Order("id ASC").Pluck("id", &ids).Error
	return ids, err
}

func (s *Store) ImageAttached(ctx context.Context, filename string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&Attachment{}).Where("filename = ?", filename).Count(&count).Error
	return count > 0, err
}

func (s *Store) AttachImage(ctx context.Context, productID uint, filename string, data []byte) error {
	att := Attachment{ProductID: productID, Filename: filename, Size: int64(len(data))}
	if err := s.db.WithContext(ctx).Create(&att).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&Product{ID: productID}).
		Update("image_file", filename).Error
}

// --- gen.Accounts ---

func (s *Store) CreateCustomer(ctx context.Context, draft gen.CustomerDraft) (uint, error) {
	c := Customer{
		Email:        draft.Email,
		Username:     draft.Username,
		Credential:   draft.Credential,
		FirstName:    draft.FirstName,
		LastName:     draft.LastName,
		RegisteredAt: draft.RegisteredAt,
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *Store) SetAddressMeta(ctx context.Context, id uint, billing, shipping gen.Address, updatedAt time.Time) error {
	var c Customer
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return fmt.Errorf("load customer %d: %w", id, err)
	}
	c.Billing = fromGenAddress(billing)
	c.Shipping = fromGenAddress(shipping)
	c.MetaUpdatedAt = updatedAt
	return s.db.WithContext(ctx).Save(&c).Error
}

func (s *Store) Customer(ctx context.Context, id uint) (*gen.CustomerInfo, error) {
	if id == 0 {
		return nil, nil
	}
	var c Customer
	err := s.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gen.CustomerInfo{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		RegisteredAt: c.RegisteredAt,
		Billing:      toGenAddress(c.Billing),
		Shipping:     toGenAddress(c.Shipping),
	}, nil
}

func (s *Store) RandomCustomerID(ctx context.Context) (uint, error) {
	var id uint
	err := s.db.WithContext(ctx).
		Raw("SELECT id FROM customers ORDER BY RAND() LIMIT 1").
		Scan(&id).Error
	return id, err
}

// --- gen.Orders ---

func (s *Store) CreateOrder(ctx context.Context, draft gen.OrderDraft) (uint, error) {
	o := Order{
		CustomerID:          draft.CustomerID,
		Status:              draft.Status,
		CreatedVia:          draft.CreatedVia,
		CustomerIP:          draft.CustomerIP,
		UserAgent:           draft.UserAgent,
		ShippingMethod:      "free_shipping",
		ShippingMethodTitle: "Free Shipping",
	}
	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (s *Store) AddLineItem(ctx context.Context, orderID, productID uint, quantity int) error {
	var p Product
	err := s.db.WithContext(ctx).First(&p, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gen.ErrUnknownProduct
	}
	if err != nil {
		return err
	}
	item := OrderItem{
		OrderID:   orderID,
		ProductID: p.ID,
		Title:     p.Title,
		Quantity:  quantity,
		UnitPrice: p.Price,
		LineTotal: p.Price * float64(quantity),
	}
	return s.db.WithContext(ctx).Create(&item).Error
}

func (s *Store) SetAddresses(ctx context.Context, orderID uint, billing, shipping gen.Address) error {
	var o Order
	if err := s.db.WithContext(ctx).First(&o, orderID).Error; err != nil {
		return fmt.Errorf("load order %d: %w", orderID, err)
	}
	o.Billing = fromGenAddress(billing)
	o.Shipping = fromGenAddress(shipping)
	return s.db.WithContext(ctx).Save(&o).Error
}

func (s *Store) RecalculateTotals(ctx context.Context, orderID uint) error {
	var total float64
	err := s.db.WithContext(ctx).Model(&OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(line_total), 0)").
		Scan(&total).Error
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&Order{ID: orderID}).
		UpdateColumn("total", total).Error
}

func (s *Store) SetPaymentMethod(ctx context.Context, orderID uint, gateway, title string) error {
	return s.db.WithContext(ctx).Model(&Order{ID: orderID}).Updates(map[string]interface{}{
		"payment_method":       gateway,
		"payment_method_title": title,
	}).Error
}

func (s *Store) CompletePayment(ctx context.Context, orderID uint, transactionID string, paidAt time.Time) error {
	return s.db.WithContext(ctx).Model(&Order{ID: orderID}).Updates(map[string]interface{}{
		"transaction_id": transactionID,
		"paid_at":        paidAt,
	}).Error
}

func (s *Store) OverrideDates(ctx context.Context, orderID uint, local, gmt time.Time) error {
	// UpdateColumns keeps gorm from re-stamping updated_at with "now".
	return s.db.WithContext(ctx).Model(&Order{ID: orderID}).UpdateColumns(map[string]interface{}{
		"created_at":     local,
		"updated_at":     local,
		"created_at_gmt": gmt,
		"updated_at_gmt": gmt,
	}).Error
}

// --- gen.Reviews ---

func (s *Store) CreateReview(ctx context.Context, draft gen.ReviewDraft) (uint, error) {
	r := Review{
		ProductID:   draft.ProductID,
		AuthorID:    draft.AuthorID,
		AuthorName:  draft.AuthorName,
		AuthorEmail: draft.AuthorEmail,
		Content:     draft.Content,
		AuthorIP:    draft.AuthorIP,
		UserAgent:   draft.UserAgent,
		Approved:    draft.Approved,
		CreatedAt:   draft.CreatedAt,
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return 0, err
	}
	return r.ID, nil
}

func (s *Store) AttachRating(ctx context.Context, reviewID uint, rating int) error {
	meta := ReviewMeta{ReviewID: reviewID, Key: "rating", Value: strconv.Itoa(rating)}
	return s.db.WithContext(ctx).Create(&meta).Error
}

func fromGenAddress(a gen.Address) Address {
	return Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
		Email:     a.Email,
		Phone:     a.Phone,
	}
}

func toGenAddress(a Address) gen.Address {
	return gen.Address{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Street:    a.Street,
		City:      a.City,
		State:     a.State,
		Postcode:  a.Postcode,
		Country:   a.Country,
		Email:     a.Email,
		Phone:     a.Phone,
	}
}
