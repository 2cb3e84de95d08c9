package gatewaytest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

type ctxKey int

const accountKey ctxKey = iota

func (g *Gateway) routes() {
	r := chi.NewRouter()
	r.Use(g.failureMiddleware)

	r.Post("/api/auth/register", g.handleRegister)
	r.Post("/api/auth/login", g.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(g.authMiddleware)

		r.Get("/api/auth/me", g.handleMe)
		r.Post("/api/auth/logout", g.handleLogout)
		r.Post("/api/auth/apikey", g.handleAPIKey)

		r.Get("/api/users/usage", g.handleUsage)

		r.Route("/api/documents", func(r chi.Router) {
			r.Get("/", g.handleListDocuments)
			r.Post("/", g.handleUploadDocument)
			r.Get("/{id}", g.handleGetDocument)
			r.Put("/{id}", g.handleUpdateDocument)
			r.Delete("/{id}", g.handleDeleteDocument)
		})

		r.Route("/api/models", func(r chi.Router) {
			r.Get("/", g.handleListModels)
			r.Post("/", g.handleCreateModel)
			r.Get("/{id}", g.handleGetModel)
			r.Post("/{id}/train", g.handleTrainModel)
			r.Delete("/{id}", g.handleDeleteModel)
		})

		r.Route("/api/chat", func(r chi.Router) {
			r.Get("/", g.handleListChats)
			r.Post("/", g.handleCreateChat)
			r.Get("/{id}", g.handleGetChat)
			r.Delete("/{id}", g.handleDeleteChat)
			r.Post("/{id}/messages", g.handleSendMessage)
		})

		r.Get("/api/payments/plans", g.handlePlans)
	})

	g.router = r
}

func (g *Gateway) failureMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		g.mu.Lock()
		forced := 0
		if g.forcedLeft > 0 {
			forced = g.forcedStatus
			g.forcedLeft--
		}
		g.mu.Unlock()

		if forced != 0 {
			writeJSON(w, forced, envelope{Message: "injected failure"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gateway) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		acc, ok := g.verifyToken(strings.TrimPrefix(header, "Bearer "))
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountKey, acc)))
	})
}

func accountFrom(r *http.Request) *account {
	return r.Context().Value(accountKey).(*account)
}

type registerPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	UserType     string `json:"userType"`
	BusinessName string `json:"businessName"`
	BusinessSize string `json:"businessSize"`
	Industry     string `json:"industry"`
	Plan         string `json:"plan"`
	Website      string `json:"website"`
	TeamSize     int    `json:"teamSize"`
	APIAccess    bool   `json:"apiAccess"`
}

func (g *Gateway) handleRegister(w http.ResponseWriter, r *http.Request) {
	var p registerPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	fields := map[string]string{}
	if p.Name == "" {
		fields["name"] = "name is required"
	}
	if p.Email == "" {
		fields["email"] = "email is required"
	}
	if p.Password == "" {
		fields["password"] = "password is required"
	}
	if p.UserType == string(models.AccountBusiness) && p.BusinessName == "" {
		fields["businessName"] = "business name is required"
	}
	if len(fields) > 0 {
		writeFieldErrors(w, http.StatusBadRequest, fields)
		return
	}

	g.mu.Lock()
	if _, exists := g.byEmail[p.Email]; exists {
		g.mu.Unlock()
		writeError(w, http.StatusConflict, "email already registered")
		return
	}
	g.mu.Unlock()

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.MinCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "hashing failed")
		return
	}

	user := models.User{
		ID:          uuid.NewString(),
		Name:        p.Name,
		Email:       p.Email,
		AccountKind: models.AccountKind(p.UserType),
		CreatedAt:   time.Now().UTC(),
	}
	if user.AccountKind == "" {
		user.AccountKind = models.AccountIndividual
	}
	if user.AccountKind == models.AccountBusiness {
		user.Business = &models.BusinessProfile{
			Name:      p.BusinessName,
			Size:      p.BusinessSize,
			Industry:  p.Industry,
			Plan:      p.Plan,
			Website:   p.Website,
			TeamSize:  p.TeamSize,
			APIAccess: p.APIAccess,
		}
	}

	acc := &account{
		user:         user,
		passwordHash: hash,
		documents:    make(map[string]*models.Document),
		models:       make(map[string]*models.Model),
		chats:        make(map[string]*models.Chat),
	}

	g.mu.Lock()
	g.byEmail[user.Email] = acc
	g.byID[user.ID] = acc
	g.mu.Unlock()

	writeAuth(w, g.IssueToken(user.ID), user)
}

func (g *Gateway) handleLogin(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	g.mu.Lock()
	acc, ok := g.byEmail[p.Email]
	g.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(p.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	writeAuth(w, g.IssueToken(acc.user.ID), acc.user)
}

func (g *Gateway) handleMe(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	g.meCalls++
	g.mu.Unlock()

	writeData(w, http.StatusOK, accountFrom(r).user)
}

func (g *Gateway) handleLogout(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	g.mu.Lock()
	g.revoked[raw] = true
	g.mu.Unlock()

	writeJSON(w, http.StatusOK, envelope{Message: "logged out"})
}

func (g *Gateway) handleAPIKey(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, models.APIKey{Key: newAPIKey(), CreatedAt: time.Now().UTC()})
}

func (g *Gateway) handleUsage(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	docs := len(acc.documents)
	g.mu.Unlock()

	writeData(w, http.StatusOK, models.Usage{
		MessagesUsed:      12,
		MessagesLimit:     1000,
		DocumentsUsed:     docs,
		DocumentsLimit:    50,
		StorageUsedBytes:  1 << 20,
		StorageLimitBytes: 1 << 30,
		PeriodStart:       time.Now().UTC().AddDate(0, 0, -15),
		PeriodEnd:         time.Now().UTC().AddDate(0, 0, 15),
	})
}

func (g *Gateway) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	docs := make([]models.Document, 0, len(acc.documents))
	for _, d := range acc.documents {
		docs = append(docs, *d)
	}
	g.mu.Unlock()

	writeData(w, http.StatusOK, docs)
}

func (g *Gateway) handleUploadDocument(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}
	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing document field")
		return
	}
	defer file.Close()

	size, err := io.Copy(io.Discard, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "read failed")
		return
	}

	contentType := r.FormValue("contentType")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	doc := &models.Document{
		ID:          uuid.NewString(),
		Name:        header.Filename,
		ContentType: contentType,
		SizeBytes:   size,
		Status:      models.DocumentReady,
		CreatedAt:   time.Now().UTC(),
	}

	g.mu.Lock()
	acc.documents[doc.ID] = doc
	g.mu.Unlock()

	writeData(w, http.StatusCreated, doc)
}

func (g *Gateway) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	doc, ok := acc.documents[chi.URLParam(r, "id")]
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeData(w, http.StatusOK, doc)
}

func (g *Gateway) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	var upd models.DocumentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	g.mu.Lock()
	doc, ok := acc.documents[chi.URLParam(r, "id")]
	if ok && upd.Name != "" {
		doc.Name = upd.Name
	}
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeData(w, http.StatusOK, doc)
}

func (g *Gateway) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	_, ok := acc.documents[chi.URLParam(r, "id")]
	delete(acc.documents, chi.URLParam(r, "id"))
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "deleted"})
}

func (g *Gateway) handleListModels(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	ms := make([]models.Model, 0, len(acc.models))
	for _, m := range acc.models {
		ms = append(ms, *m)
	}
	g.mu.Unlock()

	writeData(w, http.StatusOK, ms)
}

func (g *Gateway) handleCreateModel(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	var spec models.ModelSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if spec.Name == "" {
		writeFieldErrors(w, http.StatusBadRequest, map[string]string{"name": "name is required"})
		return
	}

	m := &models.Model{
		ID:          uuid.NewString(),
		Name:        spec.Name,
		Description: spec.Description,
		BaseModel:   spec.BaseModel,
		DocumentIDs: spec.DocumentIDs,
		Status:      models.ModelDraft,
		CreatedAt:   time.Now().UTC(),
	}

	g.mu.Lock()
	acc.models[m.ID] = m
	g.mu.Unlock()

	writeData(w, http.StatusCreated, m)
}

func (g *Gateway) handleGetModel(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	m, ok := acc.models[chi.URLParam(r, "id")]
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "model not found")
		return
	}
	writeData(w, http.StatusOK, m)
}

// handleTrainModel completes training synchronously; the real gateway is
// asynchronous, but tests only care about the resulting ready state.
func (g *Gateway) handleTrainModel(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	m, ok := acc.models[chi.URLParam(r, "id")]
	if ok {
		m.Status = models.ModelReady
	}
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "model not found")
		return
	}
	writeData(w, http.StatusOK, m)
}

func (g *Gateway) handleDeleteModel(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	_, ok := acc.models[chi.URLParam(r, "id")]
	delete(acc.models, chi.URLParam(r, "id"))
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "model not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "deleted"})
}

func (g *Gateway) handleListChats(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	chats := make([]models.Chat, 0, len(acc.chats))
	for _, c := range acc.chats {
		chats = append(chats, *c)
	}
	g.mu.Unlock()

	writeData(w, http.StatusOK, chats)
}

func (g *Gateway) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	var spec models.ChatSpec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	g.mu.Lock()
	_, modelOK := acc.models[spec.ModelID]
	g.mu.Unlock()
	if !modelOK {
		writeError(w, http.StatusBadRequest, "unknown model")
		return
	}

	chat := &models.Chat{
		ID:        uuid.NewString(),
		ModelID:   spec.ModelID,
		Title:     spec.Title,
		CreatedAt: time.Now().UTC(),
	}

	g.mu.Lock()
	acc.chats[chat.ID] = chat
	g.mu.Unlock()

	writeData(w, http.StatusCreated, chat)
}

func (g *Gateway) handleGetChat(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	chat, ok := acc.chats[chi.URLParam(r, "id")]
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "chat not found")
		return
	}
	writeData(w, http.StatusOK, chat)
}

func (g *Gateway) handleDeleteChat(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	g.mu.Lock()
	_, ok := acc.chats[chi.URLParam(r, "id")]
	delete(acc.chats, chi.URLParam(r, "id"))
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "chat not found")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "deleted"})
}

func (g *Gateway) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	acc := accountFrom(r)

	var p struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil || p.Content == "" {
		writeError(w, http.StatusBadRequest, "message content is required")
		return
	}

	g.mu.Lock()
	chat, ok := acc.chats[chi.URLParam(r, "id")]
	g.mu.Unlock()

	if !ok {
		writeError(w, http.StatusNotFound, "chat not found")
		return
	}

	now := time.Now().UTC()
	userMsg := models.Message{ID: uuid.NewString(), Role: models.RoleUser, Content: p.Content, CreatedAt: now}
	reply := models.Message{ID: uuid.NewString(), Role: models.RoleAssistant, Content: "You said: " + p.Content, CreatedAt: now}

	g.mu.Lock()
	chat.Messages = append(chat.Messages, userMsg, reply)
	g.mu.Unlock()

	writeData(w, http.StatusOK, reply)
}

func (g *Gateway) handlePlans(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, []models.Plan{
		{ID: "free", Name: "Free", PriceCents: 0, Interval: "month", Features: []string{"1 model", "10 documents"}},
		{ID: "pro", Name: "Pro", PriceCents: 2900, Interval: "month", Features: []string{"10 models", "500 documents", "API access"}},
	})
}
