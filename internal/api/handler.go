package api

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/avelory/studyhub/internal/db"
	"github.com/avelory/studyhub/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	avatarDir    string
	templates    map[string]*template.Template

	repositories     *db.Repositories
	authService      *services.AuthService
	eventService     *services.EventService
	objectiveService *services.ObjectiveService
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secret string, templateDir string, avatarDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			if route == "/" {
				return currentPath == "/" || currentPath == "/home"
			}
			return currentPath == route
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"home",
		"login",
		"register",
		"calendar",
		"event_form",
		"objectives",
		"objective_form",
		"achievements",
		"account",
		"error",
	}
	for _, page := range pages {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		avatarDir:    avatarDir,
		templates:    templates,
	}
	return handler.withDependencies(database), nil
}
