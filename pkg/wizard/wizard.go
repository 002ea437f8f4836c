// Package wizard drives the donor-side intake flow: a strictly linear
// accumulator that collects items, pickup timing, and a pickup address
// before handing one submission payload to the donation service.
package wizard

import (
	"context"
	"strings"
	"sync"
	"time"

	"GiveBridge-Backend/domain"
	"GiveBridge-Backend/internal/utils/analysis"
	"GiveBridge-Backend/internal/utils/geocode"
	"GiveBridge-Backend/pkg/donation"
)

type Step int

const (
	StepItems Step = iota
	StepTiming
	StepLocation
	StepReview
)

const maxImagesPerItem = 5

type Wizard struct {
	donorID string
	target  *domain.NGOResponse

	step          Step
	items         []domain.DonationItemRequest
	pickupOption  string
	pickupDate    time.Time
	pickupTime    string
	pickupAddress string
	notes         string

	donationService donation.DonationService
	analyzer        analysis.ImageAnalyzer
	geocoder        geocode.ReverseGeocoder
}

func NewWizard(
	donorID string,
	target *domain.NGOResponse,
	donationService donation.DonationService,
	analyzer analysis.ImageAnalyzer,
	geocoder geocode.ReverseGeocoder,
) *Wizard {
	return &Wizard{
		donorID:         donorID,
		target:          target,
		step:            StepItems,
		donationService: donationService,
		analyzer:        analyzer,
		geocoder:        geocoder,
	}
}

func (w *Wizard) Step() Step {
	return w.step
}

func (w *Wizard) Items() []domain.DonationItemRequest {
	out := make([]domain.DonationItemRequest, len(w.items))
	copy(out, w.items)
	return out
}

// AddItem appends an item on the item-selection step. Every image is sent
// through the analyzer concurrently; an analysis failure keeps the image
// attached with a placeholder result.
func (w *Wizard) AddItem(ctx context.Context, category string, quantity int, description string, imageURLs []string) error {
	if w.step != StepItems {
		return domain.ErrWrongStep
	}
	if !w.target.AcceptsCategory(category) {
		return domain.ErrCategoryNotAccepted
	}
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}
	if len(imageURLs) > maxImagesPerItem {
		return domain.ErrTooManyImages
	}

	images := make([]domain.DonationImageRequest, len(imageURLs))
	var wg sync.WaitGroup
	for i, url := range imageURLs {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			text, err := w.analyzer.AnalyzeImage(ctx, url)
			if err != nil {
				text = "Analysis failed"
			}
			images[i] = domain.DonationImageRequest{URL: url, Analysis: text}
		}(i, url)
	}
	wg.Wait()

	w.items = append(w.items, domain.DonationItemRequest{
		Category:    category,
		Quantity:    quantity,
		Description: description,
		Images:      images,
	})
	return nil
}

func (w *Wizard) SetScheduled(date time.Time, timeBand string) error {
	if w.step != StepTiming {
		return domain.ErrWrongStep
	}
	if timeBand != "morning" && timeBand != "afternoon" && timeBand != "evening" {
		return domain.ErrInvalidPickupTime
	}
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(startOfToday) {
		return domain.ErrPastPickupDate
	}
	w.pickupOption = "scheduled"
	w.pickupDate = date
	w.pickupTime = timeBand
	return nil
}

func (w *Wizard) SetASAP() error {
	if w.step != StepTiming {
		return domain.ErrWrongStep
	}
	w.pickupOption = "asap"
	w.pickupDate = time.Time{}
	w.pickupTime = ""
	return nil
}

func (w *Wizard) SetAddress(address string) error {
	if w.step != StepLocation {
		return domain.ErrWrongStep
	}
	if strings.TrimSpace(address) == "" {
		return domain.ErrEmptyAddress
	}
	w.pickupAddress = address
	return nil
}

// UseCurrentLocation pre-fills the address from device coordinates. On a
// geocoding error the caller falls back to manual entry.
func (w *Wizard) UseCurrentLocation(ctx context.Context, lat, lng float64) error {
	if w.step != StepLocation {
		return domain.ErrWrongStep
	}
	address, err := w.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil {
		return err
	}
	w.pickupAddress = address
	return nil
}

func (w *Wizard) SetNotes(notes string) {
	w.notes = notes
}

// Next advances to the following step once the current one is complete.
func (w *Wizard) Next() error {
	switch w.step {
	case StepItems:
		if len(w.items) == 0 {
			return domain.ErrStepIncomplete
		}
	case StepTiming:
		if w.pickupOption == "" {
			return domain.ErrStepIncomplete
		}
		if w.pickupOption == "scheduled" && (w.pickupDate.IsZero() || w.pickupTime == "") {
			return domain.ErrStepIncomplete
		}
	case StepLocation:
		if strings.TrimSpace(w.pickupAddress) == "" {
			return domain.ErrStepIncomplete
		}
	case StepReview:
		return domain.ErrWrongStep
	}
	w.step++
	return nil
}

func (w *Wizard) Back() {
	if w.step > StepItems {
		w.step--
	}
}

// Submit sends the accumulated payload. Success discards the wizard state;
// failure keeps everything so the donor can retry from the review step.
func (w *Wizard) Submit(ctx context.Context) (*domain.DonationResponse, error) {
	if w.step != StepReview {
		return nil, domain.ErrWrongStep
	}

	req := domain.CreateDonationRequest{
		NGOID:         w.target.ID,
		Items:         w.Items(),
		PickupAddress: w.pickupAddress,
		PickupOption:  w.pickupOption,
		PickupTime:    w.pickupTime,
		Notes:         w.notes,
	}
	if w.pickupOption == "scheduled" {
		req.PickupDate = w.pickupDate.Format("2006-01-02")
	}

	created, err := w.donationService.CreateDonation(ctx, req, w.donorID)
	if err != nil {
		return nil, err
	}

	w.reset()
	return created, nil
}

func (w *Wizard) reset() {
	w.step = StepItems
	w.items = nil
	w.pickupOption = ""
	w.pickupDate = time.Time{}
	w.pickupTime = ""
	w.pickupAddress = ""
	w.notes = ""
}
