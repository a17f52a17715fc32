package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"plantmon/internal/model"
	"plantmon/internal/repository"
	"plantmon/internal/storage"
)

// PlantUpdateDetails is the write-result shape returned after a plant update.
type PlantUpdateDetails struct {
	PlantID       string `json:"plant_id"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId"`
	Acknowledged  bool   `json:"acknowledged"`
}

// PlantDeleteDetails is returned after a plant deletion.
type PlantDeleteDetails struct {
	Message      string `json:"message"`
	PlantID      string `json:"plant_id"`
	Acknowledged bool   `json:"acknowledged"`
	DeletedCount int64  `json:"deletedCount"`
}

// PlantImageDetails is returned after an image upload, including the public
// URL persisted on the plant record.
type PlantImageDetails struct {
	PlantID       string `json:"plant_id"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedID    string `json:"upsertedId"`
	Acknowledged  bool   `json:"acknowledged"`
	ImageURL      string `json:"imageUrl"`
}

// PlantService defines the use cases for managing plants.
type PlantService interface {
	// List returns all plants.
	List(ctx context.Context) ([]model.Plant, error)

	// Get returns a single plant by its ID.
	Get(ctx context.Context, id string) (*model.Plant, error)

	// Create stores a new plant and returns the assigned ID.
	Create(ctx context.Context, p *model.Plant) (string, error)

	// Update overwrites the mutable fields of the plant identified by p.ID.
	// The plant must already exist.
	Update(ctx context.Context, p *model.Plant) (*PlantUpdateDetails, error)

	// Delete removes a plant by ID.
	Delete(ctx context.Context, id string) (*PlantDeleteDetails, error)

	// UploadImage uploads the content to object storage, persists the resulting
	// public URL on the plant record, and rolls back storage if the DB write fails.
	// - originalFilename is used only to extract the extension; the stored key is UUID-based.
	UploadImage(ctx context.Context, plantID string, r io.Reader, originalFilename string, contentType string, size int64) (*PlantImageDetails, error)
}

// plantService is a concrete implementation of PlantService.
type plantService struct {
	store storage.Storage
	repo  repository.PlantRepository
}

// NewPlantService constructs a new PlantService.
func NewPlantService(store storage.Storage, repo repository.PlantRepository) PlantService {
	return &plantService{store: store, repo: repo}
}

func (s *plantService) List(ctx context.Context) ([]model.Plant, error) {
	return s.repo.List(ctx)
}

func (s *plantService) Get(ctx context.Context, id string) (*model.Plant, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return p, nil
}

func (s *plantService) Create(ctx context.Context, p *model.Plant) (string, error) {
	// A fresh plant never carries an image; the URL is set by UploadImage.
	p.ImageURL = ""
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *plantService) Update(ctx context.Context, p *model.Plant) (*PlantUpdateDetails, error) {
	if p.ID == "" {
		return nil, ErrIDRequired
	}
	// The plant must exist before the write so callers can distinguish
	// missing records from no-op updates.
	if _, err := s.repo.FindByID(ctx, p.ID); err != nil {
		return nil, translateRepoErr(err)
	}

	res, err := s.repo.Update(ctx, p.ID, p)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return &PlantUpdateDetails{
		PlantID:       p.ID,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
		Acknowledged:  res.Acknowledged,
	}, nil
}

func (s *plantService) Delete(ctx context.Context, id string) (*PlantDeleteDetails, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, translateRepoErr(err)
	}

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return &PlantDeleteDetails{
		Message:      "Plant deleted successfully",
		PlantID:      id,
		Acknowledged: res.Acknowledged,
		DeletedCount: res.DeletedCount,
	}, nil
}

func (s *plantService) UploadImage(ctx context.Context, plantID string, r io.Reader, originalFilename string, contentType string, size int64) (*PlantImageDetails, error) {
	if plantID == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if _, err := s.repo.FindByID(ctx, plantID); err != nil {
		return nil, translateRepoErr(err)
	}

	// Generate object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	if ext == "" {
		ext = ".jpg"
	}
	key := filepath.ToSlash(filepath.Join("plants", uuid.New().String()+ext))

	// Upload to object storage
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	// Persist the public URL on the plant record
	imageURL := s.store.PublicURL(key)
	res, err := s.repo.SetImageURL(ctx, plantID, imageURL)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return &PlantImageDetails{
		PlantID:       plantID,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
		Acknowledged:  res.Acknowledged,
		ImageURL:      imageURL,
	}, nil
}
