package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GiveBridge-Backend/domain"
)

type fakeDonationService struct {
	lastRequest *domain.CreateDonationRequest
	lastDonorID string
	failWith    error
}

func (f *fakeDonationService) CreateDonation(_ context.Context, req domain.CreateDonationRequest, donorID string) (*domain.DonationResponse, error) {
	f.lastRequest = &req
	f.lastDonorID = donorID
	if f.failWith != nil {
		return nil, f.failWith
	}
	return &domain.DonationResponse{
		ID:      uuid.NewString(),
		DonorID: donorID,
		NGOID:   req.NGOID,
		Status:  "Pending",
	}, nil
}

func (f *fakeDonationService) GetDonationByID(context.Context, string, string) (*domain.DonationResponse, error) {
	return nil, domain.ErrDonationNotFound
}

func (f *fakeDonationService) GetDonorDonations(context.Context, string) ([]*domain.DonationResponse, error) {
	return nil, nil
}

func (f *fakeDonationService) GetNGODonations(context.Context, string) ([]*domain.DonationResponse, error) {
	return nil, nil
}

func (f *fakeDonationService) UpdateDonationStatus(context.Context, domain.UpdateDonationStatusRequest, string) (*domain.DonationResponse, error) {
	return nil, domain.ErrInvalidTransition
}

type fakeAnalyzer struct {
	results map[string]string
	failFor map[string]bool
}

func (f *fakeAnalyzer) AnalyzeImage(_ context.Context, imageURL string) (string, error) {
	if f.failFor[imageURL] {
		return "", errors.New("analyzer unavailable")
	}
	if text, ok := f.results[imageURL]; ok {
		return text, nil
	}
	return "an item", nil
}

type fakeGeocoder struct {
	address string
	err     error
}

func (f *fakeGeocoder) ReverseGeocode(context.Context, float64, float64) (string, error) {
	return f.address, f.err
}

type wizardFixture struct {
	wizard   *Wizard
	service  *fakeDonationService
	analyzer *fakeAnalyzer
	geocoder *fakeGeocoder
	donorID  string
	ngo      *domain.NGOResponse
}

func newWizardFixture() *wizardFixture {
	service := &fakeDonationService{}
	analyzer := &fakeAnalyzer{results: map[string]string{}, failFor: map[string]bool{}}
	geocoder := &fakeGeocoder{address: "12 Elm St, Springfield"}
	donorID := uuid.NewString()
	ngo := &domain.NGOResponse{
		ID:                 uuid.NewString(),
		Name:               "Helping Hands",
		AcceptedCategories: []string{"Clothes", "Books"},
	}
	return &wizardFixture{
		wizard:   NewWizard(donorID, ngo, service, analyzer, geocoder),
		service:  service,
		analyzer: analyzer,
		geocoder: geocoder,
		donorID:  donorID,
		ngo:      ngo,
	}
}

// Walks the fixture wizard to the review step with one item and an asap
// pickup.
func (fx *wizardFixture) toReview(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Clothes", 2, "winter coats", nil))
	require.NoError(t, fx.wizard.Next())
	require.NoError(t, fx.wizard.SetASAP())
	require.NoError(t, fx.wizard.Next())
	require.NoError(t, fx.wizard.SetAddress("12 Elm St"))
	require.NoError(t, fx.wizard.Next())
	require.Equal(t, StepReview, fx.wizard.Step())
}

func TestAddItemCategoryGate(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()

	err := fx.wizard.AddItem(ctx, "Electronics", 1, "", nil)
	assert.ErrorIs(t, err, domain.ErrCategoryNotAccepted)
	assert.Empty(t, fx.wizard.Items())

	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	assert.Len(t, fx.wizard.Items(), 1)
}

func TestAddItemQuantityAndImageCap(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()

	assert.ErrorIs(t, fx.wizard.AddItem(ctx, "Clothes", 0, "", nil), domain.ErrInvalidQuantity)

	urls := []string{"a", "b", "c", "d", "e", "f"}
	assert.ErrorIs(t, fx.wizard.AddItem(ctx, "Clothes", 1, "", urls), domain.ErrTooManyImages)

	require.NoError(t, fx.wizard.AddItem(ctx, "Clothes", 1, "", urls[:5]))
	require.Len(t, fx.wizard.Items(), 1)
	assert.Len(t, fx.wizard.Items()[0].Images, 5)
}

func TestAddItemAnalysisFailureKeepsImage(t *testing.T) {
	fx := newWizardFixture()
	fx.analyzer.results["https://img/coat.jpg"] = "a wool coat in good condition"
	fx.analyzer.failFor["https://img/blurry.jpg"] = true
	ctx := context.Background()

	require.NoError(t, fx.wizard.AddItem(ctx, "Clothes", 1, "", []string{
		"https://img/coat.jpg",
		"https://img/blurry.jpg",
	}))

	images := fx.wizard.Items()[0].Images
	require.Len(t, images, 2)
	assert.Equal(t, "a wool coat in good condition", images[0].Analysis)
	assert.Equal(t, "https://img/blurry.jpg", images[1].URL)
	assert.Equal(t, "Analysis failed", images[1].Analysis)
}

func TestNextRequiresItems(t *testing.T) {
	fx := newWizardFixture()

	assert.ErrorIs(t, fx.wizard.Next(), domain.ErrStepIncomplete)
	assert.Equal(t, StepItems, fx.wizard.Step())
}

func TestTimingValidation(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	require.NoError(t, fx.wizard.Next())

	// Cannot leave the timing step without choosing an option.
	assert.ErrorIs(t, fx.wizard.Next(), domain.ErrStepIncomplete)

	yesterday := time.Now().AddDate(0, 0, -1)
	assert.ErrorIs(t, fx.wizard.SetScheduled(yesterday, "morning"), domain.ErrPastPickupDate)

	tomorrow := time.Now().AddDate(0, 0, 1)
	assert.ErrorIs(t, fx.wizard.SetScheduled(tomorrow, "midnight"), domain.ErrInvalidPickupTime)

	require.NoError(t, fx.wizard.SetScheduled(tomorrow, "evening"))
	require.NoError(t, fx.wizard.Next())
	assert.Equal(t, StepLocation, fx.wizard.Step())
}

func TestASAPClearsSchedule(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	require.NoError(t, fx.wizard.Next())

	tomorrow := time.Now().AddDate(0, 0, 1)
	require.NoError(t, fx.wizard.SetScheduled(tomorrow, "morning"))
	require.NoError(t, fx.wizard.SetASAP())
	require.NoError(t, fx.wizard.Next())
	require.NoError(t, fx.wizard.SetAddress("12 Elm St"))
	require.NoError(t, fx.wizard.Next())

	_, err := fx.wizard.Submit(ctx)
	require.NoError(t, err)
	require.NotNil(t, fx.service.lastRequest)
	assert.Equal(t, "asap", fx.service.lastRequest.PickupOption)
	assert.Empty(t, fx.service.lastRequest.PickupDate)
	assert.Empty(t, fx.service.lastRequest.PickupTime)
}

func TestAddressRequired(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	require.NoError(t, fx.wizard.Next())
	require.NoError(t, fx.wizard.SetASAP())
	require.NoError(t, fx.wizard.Next())

	assert.ErrorIs(t, fx.wizard.SetAddress("   "), domain.ErrEmptyAddress)
	assert.ErrorIs(t, fx.wizard.Next(), domain.ErrStepIncomplete)
}

func TestUseCurrentLocation(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	require.NoError(t, fx.wizard.Next())
	require.NoError(t, fx.wizard.SetASAP())
	require.NoError(t, fx.wizard.Next())

	require.NoError(t, fx.wizard.UseCurrentLocation(ctx, 39.78, -89.65))
	require.NoError(t, fx.wizard.Next())

	_, err := fx.wizard.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12 Elm St, Springfield", fx.service.lastRequest.PickupAddress)
}

func TestUseCurrentLocationFailure(t *testing.T) {
	fx := newWizardFixture()
	fx.geocoder.err = errors.New("geocoder down")
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	require.NoError(t, fx.wizard.Next())
	require.NoError(t, fx.wizard.SetASAP())
	require.NoError(t, fx.wizard.Next())

	assert.Error(t, fx.wizard.UseCurrentLocation(ctx, 39.78, -89.65))
	// Manual entry still works after the lookup fails.
	require.NoError(t, fx.wizard.SetAddress("12 Elm St"))
	require.NoError(t, fx.wizard.Next())
}

func TestBackNavigation(t *testing.T) {
	fx := newWizardFixture()
	ctx := context.Background()
	require.NoError(t, fx.wizard.AddItem(ctx, "Books", 1, "", nil))
	require.NoError(t, fx.wizard.Next())

	fx.wizard.Back()
	assert.Equal(t, StepItems, fx.wizard.Step())
	fx.wizard.Back()
	assert.Equal(t, StepItems, fx.wizard.Step())

	// Items added earlier survive the round trip.
	require.NoError(t, fx.wizard.Next())
	assert.Equal(t, StepTiming, fx.wizard.Step())
}

func TestSubmitOnlyFromReview(t *testing.T) {
	fx := newWizardFixture()

	_, err := fx.wizard.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrWrongStep)
}

func TestSubmitSuccessResetsState(t *testing.T) {
	fx := newWizardFixture()
	fx.toReview(t)
	ctx := context.Background()

	created, err := fx.wizard.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, fx.ngo.ID, created.NGOID)
	assert.Equal(t, fx.donorID, fx.service.lastDonorID)

	assert.Equal(t, StepItems, fx.wizard.Step())
	assert.Empty(t, fx.wizard.Items())
}

func TestSubmitFailurePreservesState(t *testing.T) {
	fx := newWizardFixture()
	fx.toReview(t)
	fx.service.failWith = domain.ErrNGONotFound

	_, err := fx.wizard.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNGONotFound)

	assert.Equal(t, StepReview, fx.wizard.Step())
	assert.Len(t, fx.wizard.Items(), 1)
}
