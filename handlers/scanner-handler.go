package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/ai"
	"github.com/krishkalaria12/vitalplan-api/logger"
	"github.com/krishkalaria12/vitalplan-api/middleware"
	"github.com/krishkalaria12/vitalplan-api/models"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 100
	unknownBrand        = "Unknown"
	analyzeFailed       = "Failed to analyze image. Please try again."
)

var (
	allowedImageTypes = map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
	}
	barcodePattern = regexp.MustCompile(`^[0-9]{8,14}$`)
)

type scanResult struct {
	ID uint `json:"id"`
	*ai.FoodAnalysis
	ImageURL string `json:"image_url,omitempty"`
}

// AnalyzeImage validates the upload, runs the vision analysis, optionally
// stores the resized image and records the scan.
func (h *Handler) AnalyzeImage(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("file")
	if err != nil {
		return badRequest("No file uploaded")
	}

	mediaType, _, err := mime.ParseMediaType(file.Header.Get(fiber.HeaderContentType))
	if err != nil || !allowedImageTypes[mediaType] {
		return badRequest("Invalid file type. Only JPEG, PNG, and WebP are allowed.")
	}
	if file.Size > h.Config.MaxFileSize {
		return badRequest("File too large")
	}

	src, err := file.Open()
	if err != nil {
		return badRequest("Failed to open file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, h.Config.MaxFileSize+1))
	if err != nil {
		return badRequest("Failed to read file")
	}
	if int64(len(data)) > h.Config.MaxFileSize {
		return badRequest("File too large")
	}

	ctx := c.UserContext()
	analysis, jpeg, err := h.AI.AnalyzeFoodImage(ctx, data)
	if err != nil {
		if errors.Is(err, ai.ErrUnsupportedImage) {
			return badRequest("Could not decode image")
		}
		logger.Error("error analyzing image", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, analyzeFailed)
	}

	var imageURL string
	if h.Uploader != nil {
		imageURL, err = h.Uploader.Upload(ctx, jpeg, file.Filename, "image/jpeg")
		if err != nil {
			logger.Warn("failed to store scan image", zap.Uint("user_id", user.ID), zap.Error(err))
			imageURL = ""
		}
	}

	scan, err := scanFromAnalysis(user.ID, analysis, imageURL)
	if err != nil {
		logger.Error("error encoding scan", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, analyzeFailed)
	}
	if err := h.Scans.Create(ctx, scan); err != nil {
		logger.Error("error saving scan", zap.Uint("user_id", user.ID), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, analyzeFailed)
	}

	return respond(c, fiber.StatusOK, "Image analyzed successfully", scanResult{
		ID:           scan.ID,
		FoodAnalysis: analysis,
		ImageURL:     imageURL,
	})
}

func scanFromAnalysis(userID uint, a *ai.FoodAnalysis, imageURL string) (*models.ScannedFood, error) {
	macros, err := json.Marshal(a.Macros)
	if err != nil {
		return nil, err
	}
	details, err := json.Marshal(a.NutritionDetails)
	if err != nil {
		return nil, err
	}

	brand := a.Brand
	if brand == "" {
		brand = unknownBrand
	}
	return &models.ScannedFood{
		UserID:           userID,
		Name:             a.FoodName,
		Brand:            brand,
		Barcode:          a.Barcode,
		Calories:         a.Calories,
		ServingSize:      a.ServingSize,
		Macros:           datatypes.JSON(macros),
		NutritionDetails: datatypes.JSON(details),
		AIInsights:       a.AIInsights,
		Confidence:       a.Confidence,
		ImageURL:         imageURL,
		AnalyzedAt:       a.AnalyzedAt,
	}, nil
}

func (h *Handler) ScanHistory(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	limit := min(max(c.QueryInt("limit", defaultHistoryLimit), 1), maxHistoryLimit)

	scans, err := h.Scans.History(c.UserContext(), user.ID, limit)
	if err != nil {
		return storeError(err, "Scanned food not found")
	}
	return respond(c, fiber.StatusOK, "Scan history found", scans)
}

func (h *Handler) DeleteScan(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	if err := h.Scans.Delete(c.UserContext(), user.ID, id); err != nil {
		return storeError(err, "Scanned food not found")
	}
	return respond(c, fiber.StatusOK, "Scanned food deleted successfully", nil)
}

// ScanInsights regenerates the AI insights of a stored scan.
func (h *Handler) ScanInsights(c *fiber.Ctx) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := paramID(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	scan, err := h.Scans.Get(ctx, user.ID, id)
	if err != nil {
		return storeError(err, "Scanned food not found")
	}

	summary, err := summaryOf(scan)
	if err != nil {
		logger.Error("stored scan is corrupt", zap.Uint("scan_id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Stored nutrition data is invalid")
	}

	insights, err := h.AI.NutritionInsights(ctx, summary)
	if err != nil {
		logger.Error("error generating insights", zap.Uint("scan_id", id), zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to generate insights. Please try again.")
	}

	scan.AIInsights = insights
	if err := h.Scans.Save(ctx, scan); err != nil {
		return storeError(err, "Scanned food not found")
	}
	return respond(c, fiber.StatusOK, "Insights generated successfully", scan)
}

func summaryOf(scan *models.ScannedFood) (ai.NutritionSummary, error) {
	var macros map[string]float64
	if len(scan.Macros) > 0 {
		if err := json.Unmarshal(scan.Macros, &macros); err != nil {
			return ai.NutritionSummary{}, fmt.Errorf("decode macros of scan %d: %w", scan.ID, err)
		}
	}

	var details map[string]any
	if len(scan.NutritionDetails) > 0 {
		if err := json.Unmarshal(scan.NutritionDetails, &details); err != nil {
			return ai.NutritionSummary{}, fmt.Errorf("decode nutrition details of scan %d: %w", scan.ID, err)
		}
	}

	fiberGrams, ok := macros["fiber"]
	if !ok {
		if v, isNum := details["fiber"].(float64); isNum {
			fiberGrams = v
		}
	}

	return ai.NutritionSummary{
		Calories: scan.Calories,
		Protein:  macros["protein"],
		Carbs:    macros["carbs"],
		Fat:      macros["fat"],
		Fiber:    fiberGrams,
	}, nil
}

// ScanBarcode returns placeholder nutrition data for a barcode. Nothing is
// stored.
func (h *Handler) ScanBarcode(c *fiber.Ctx) error {
	if _, err := middleware.CurrentUser(c); err != nil {
		return err
	}

	barcode := c.Params("barcode")
	if !barcodePattern.MatchString(barcode) {
		return badRequest("Invalid barcode")
	}
	return respond(c, fiber.StatusOK, "Barcode scanned successfully", ai.BarcodePlaceholder(barcode, h.now()))
}
