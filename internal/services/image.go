package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/lineup-app/lineup-server/internal/model"
	"github.com/lineup-app/lineup-server/internal/store"
	"github.com/lineup-app/lineup-server/internal/vision"
)

// ImageService ingests pictures into the catalog the Scoring Engine picks
// event images from.
type ImageService struct {
	store   store.Store
	labeler vision.Labeler
}

func NewImageService(s store.Store, l vision.Labeler) *ImageService {
	return &ImageService{store: s, labeler: l}
}

// Ingest labels the image at url and stores the catalog record. The labeling
// call happens before the transaction; an upstream failure writes nothing.
func (s *ImageService) Ingest(ctx context.Context, url string) (*model.Image, error) {
	labels, err := s.labeler.LabelImage(ctx, url)
	if err != nil {
		return nil, err
	}

	img := &model.Image{
		ImageID:   uuid.NewString(),
		URL:       url,
		Tags:      make([]string, 0, len(labels)),
		TagScores: make(map[string]float64, len(labels)),
	}
	for _, l := range labels {
		img.Tags = append(img.Tags, l.Tag)
		img.TagScores[l.Tag] = l.Salience
	}

	err = s.store.RunTransaction(ctx, func(tx store.Tx) error {
		return tx.Images().Put(img)
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}
