package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agroconnect/agroconnect-api/internal/models"
)

func cropListRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	h := NewCropHandler(db, nil, nil)
	r.GET("/api/crops", h.List)
	return r
}

func seedCrop(t *testing.T, db *gorm.DB, farmerID uint, name, status string, price float64) {
	t.Helper()

	crop := models.Crop{
		FarmerID: farmerID,
		Name:     name,
		Quantity: 100,
		Unit:     "kg",
		Price:    price,
		Status:   status,
	}
	if err := db.Create(&crop).Error; err != nil {
		t.Fatalf("failed to seed crop %s: %v", name, err)
	}
}

func listCrops(t *testing.T, r *gin.Engine, query string) []cropView {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/crops"+query, nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		Success bool       `json:"success"`
		Crops   []cropView `json:"crops"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Success {
		t.Fatal("expected success=true")
	}
	return body.Crops
}

func TestCropList_HidesNonAvailableRegardlessOfPriceFilter(t *testing.T) {
	db := newTestDB(t)
	farmer := seedFarmer(t, db, "grower@example.com")

	seedCrop(t, db, farmer.ID, "Wheat", models.CropStatusAvailable, 50)
	seedCrop(t, db, farmer.ID, "Corn", models.CropStatusSold, 50)
	seedCrop(t, db, farmer.ID, "Barley", models.CropStatusReserved, 50)

	r := cropListRouter(db)

	for _, query := range []string{"", "?minPrice=10&maxPrice=100", "?maxPrice=50"} {
		crops := listCrops(t, r, query)

		if len(crops) != 1 {
			t.Fatalf("query %q: expected 1 crop, got %d", query, len(crops))
		}
		if crops[0].Name != "Wheat" {
			t.Errorf("query %q: expected Wheat, got %s", query, crops[0].Name)
		}
		for _, crop := range crops {
			if crop.Status != models.CropStatusAvailable {
				t.Errorf("query %q: %s listed with status %q", query, crop.Name, crop.Status)
			}
		}
	}
}

func TestCropList_PriceBoundsInclusive(t *testing.T) {
	db := newTestDB(t)
	farmer := seedFarmer(t, db, "grower@example.com")

	seedCrop(t, db, farmer.ID, "Cheap", models.CropStatusAvailable, 10)
	seedCrop(t, db, farmer.ID, "Mid", models.CropStatusAvailable, 50)
	seedCrop(t, db, farmer.ID, "Dear", models.CropStatusAvailable, 90)

	r := cropListRouter(db)

	crops := listCrops(t, r, "?minPrice=10&maxPrice=50")
	if len(crops) != 2 {
		t.Fatalf("expected 2 crops at the inclusive bounds, got %d", len(crops))
	}
	for _, crop := range crops {
		if crop.Name == "Dear" {
			t.Error("crop above maxPrice leaked through the filter")
		}
	}
}

func TestCropList_JoinsFarmerDetails(t *testing.T) {
	db := newTestDB(t)
	farmer := seedFarmer(t, db, "grower@example.com")

	seedCrop(t, db, farmer.ID, "Wheat", models.CropStatusAvailable, 50)

	crops := listCrops(t, cropListRouter(db), "")
	if len(crops) != 1 {
		t.Fatalf("expected 1 crop, got %d", len(crops))
	}
	if crops[0].FarmerName != "Test Farmer" || crops[0].FarmerEmail != "grower@example.com" {
		t.Errorf("owner not joined: name=%q email=%q", crops[0].FarmerName, crops[0].FarmerEmail)
	}
}

func TestCropList_DistanceSortsNearestFirst(t *testing.T) {
	db := newTestDB(t)
	farmer := seedFarmer(t, db, "grower@example.com")

	near := models.Crop{
		FarmerID: farmer.ID, Name: "Near", Quantity: 1, Unit: "kg",
		Price: 50, Latitude: 1, Longitude: 1, Status: models.CropStatusAvailable,
	}
	far := models.Crop{
		FarmerID: farmer.ID, Name: "Far", Quantity: 1, Unit: "kg",
		Price: 50, Latitude: 40, Longitude: 40, Status: models.CropStatusAvailable,
	}
	// Far is created last so that creation-time ordering alone would put
	// it first.
	if err := db.Create(&near).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&far).Error; err != nil {
		t.Fatal(err)
	}

	crops := listCrops(t, cropListRouter(db), "?latitude=0&longitude=0")
	if len(crops) != 2 {
		t.Fatalf("expected 2 crops, got %d", len(crops))
	}
	if crops[0].Name != "Near" {
		t.Errorf("expected Near first, got %s", crops[0].Name)
	}
	for _, crop := range crops {
		if crop.Distance == nil {
			t.Errorf("%s missing distance annotation", crop.Name)
		}
	}
}
