package handler

import (
	"context"
	"time"

	"github.com/krishkalaria12/vitalplan-api/ai"
	"github.com/krishkalaria12/vitalplan-api/marketplace"
	"github.com/krishkalaria12/vitalplan-api/models"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

type GoalStore interface {
	ListActive(ctx context.Context, userID uint) ([]models.Goal, error)
	Create(ctx context.Context, goal *models.Goal) error
	Get(ctx context.Context, userID, id uint) (*models.Goal, error)
	Save(ctx context.Context, goal *models.Goal) error
	Deactivate(ctx context.Context, userID, id uint) error
}

type DietPlanStore interface {
	ListActive(ctx context.Context, userID uint) ([]models.DietPlan, error)
	Create(ctx context.Context, plan *models.DietPlan) error
	Get(ctx context.Context, userID, id uint) (*models.DietPlan, error)
	Save(ctx context.Context, plan *models.DietPlan) error
	Deactivate(ctx context.Context, userID, id uint) error
}

type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	List(ctx context.Context, userID uint) ([]models.Order, error)
	Get(ctx context.Context, userID, id uint) (*models.Order, error)
	UpdateStatus(ctx context.Context, userID, id uint, status string) error
}

type ScanStore interface {
	Create(ctx context.Context, scan *models.ScannedFood) error
	History(ctx context.Context, userID uint, limit int) ([]models.ScannedFood, error)
	Get(ctx context.Context, userID, id uint) (*models.ScannedFood, error)
	Save(ctx context.Context, scan *models.ScannedFood) error
	Delete(ctx context.Context, userID, id uint) error
}

type Analyzer interface {
	AnalyzeFoodImage(ctx context.Context, data []byte) (*ai.FoodAnalysis, []byte, error)
	GenerateDietPlan(ctx context.Context, profile ai.Profile, goals []ai.GoalInput) (*ai.GeneratedPlan, error)
	NutritionInsights(ctx context.Context, n ai.NutritionSummary) ([]string, error)
}

type ImageUploader interface {
	Upload(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

type Catalog interface {
	List(q marketplace.Query) (marketplace.Page, error)
	Get(id string) (marketplace.Item, bool)
	Categories() []marketplace.Category
	Recommendations(limit int) ([]marketplace.Item, error)
}

type Config struct {
	Version        string
	MaxFileSize    int64
	CookieDuration time.Duration
	SecureCookie   bool
}

// Handler holds the dependencies shared by every route. Uploader may be nil,
// in which case scan images are not stored.
type Handler struct {
	Users     UserStore
	Goals     GoalStore
	DietPlans DietPlanStore
	Orders    OrderStore
	Scans     ScanStore
	AI        Analyzer
	Uploader  ImageUploader
	Tokens    TokenIssuer
	Catalog   Catalog
	Config    Config

	Now func() time.Time
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
