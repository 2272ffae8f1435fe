// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"scholargate/internal/models"
	"scholargate/internal/slug"
	"scholargate/internal/store"
)

// Taxonomy groups the lookup-table handlers: tags, categories, countries,
// degree levels, funding types, employment types, and the daily quote.
// These are thin CRUD pass-throughs over the stores; slug derivation is
// the only logic.
type Taxonomy struct {
	tags       *store.TagStore
	categories *store.CategoryStore
	countries  *store.CountryStore
	degrees    *store.DegreeLevelStore
	funding    *store.FundingTypeStore
	employment *store.EmploymentTypeStore
	quotes     *store.QuoteStore
	posts      *store.PostStore
}

// NewTaxonomy creates the lookup handler group.
func NewTaxonomy(tags *store.TagStore, categories *store.CategoryStore, countries *store.CountryStore, degrees *store.DegreeLevelStore, funding *store.FundingTypeStore, employment *store.EmploymentTypeStore, quotes *store.QuoteStore, posts *store.PostStore) *Taxonomy {
	return &Taxonomy{
		tags:       tags,
		categories: categories,
		countries:  countries,
		degrees:    degrees,
		funding:    funding,
		employment: employment,
		quotes:     quotes,
		posts:      posts,
	}
}

// lookupInput is the shared create/update payload for name+slug lookups.
type lookupInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// resolveSlug derives the slug from the name unless one was supplied.
// Returns empty when neither yields a usable slug.
func (in *lookupInput) resolveSlug() string {
	if in.Slug != "" {
		return slug.Generate(in.Slug)
	}
	return slug.Generate(in.Name)
}

func parseID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// --- Tags ---

func (h *Taxonomy) TagsList(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tags.List()
	if err != nil {
		respondError(w, "list tags", err)
		return
	}
	respondData(w, http.StatusOK, tags)
}

func (h *Taxonomy) TagCreate(w http.ResponseWriter, r *http.Request) {
	var in lookupInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondBadRequest(w, "name is required")
		return
	}
	tagSlug := in.resolveSlug()
	if tagSlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	tag, err := h.tags.Create(in.Name, tagSlug)
	if err != nil {
		respondError(w, "create tag", err)
		return
	}
	respondData(w, http.StatusCreated, tag)
}

func (h *Taxonomy) TagUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid tag id")
		return
	}
	var in lookupInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondBadRequest(w, "name is required")
		return
	}
	tagSlug := in.resolveSlug()
	if tagSlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	tag, err := h.tags.Update(id, in.Name, tagSlug)
	if err != nil {
		respondError(w, "update tag", err)
		return
	}
	if tag == nil {
		respondNotFound(w)
		return
	}
	respondData(w, http.StatusOK, tag)
}

func (h *Taxonomy) TagDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid tag id")
		return
	}
	deleted, err := h.tags.Delete(id)
	if err != nil {
		respondError(w, "delete tag", err)
		return
	}
	if !deleted {
		respondNotFound(w)
		return
	}
	respondMessage(w, http.StatusOK, "tag deleted")
}

// --- Categories ---

func (h *Taxonomy) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List()
	if err != nil {
		respondError(w, "list categories", err)
		return
	}
	respondData(w, http.StatusOK, categories)
}

func (h *Taxonomy) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var in lookupInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondBadRequest(w, "name is required")
		return
	}
	catSlug := in.resolveSlug()
	if catSlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	category, err := h.categories.Create(in.Name, catSlug, in.Description)
	if err != nil {
		respondError(w, "create category", err)
		return
	}
	respondData(w, http.StatusCreated, category)
}

func (h *Taxonomy) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid category id")
		return
	}
	var in lookupInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondBadRequest(w, "name is required")
		return
	}
	catSlug := in.resolveSlug()
	if catSlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	category, err := h.categories.Update(id, in.Name, catSlug, in.Description)
	if err != nil {
		respondError(w, "update category", err)
		return
	}
	if category == nil {
		respondNotFound(w)
		return
	}
	respondData(w, http.StatusOK, category)
}

func (h *Taxonomy) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid category id")
		return
	}
	deleted, err := h.categories.Delete(id)
	if err != nil {
		respondError(w, "delete category", err)
		return
	}
	if !deleted {
		respondNotFound(w)
		return
	}
	respondMessage(w, http.StatusOK, "category deleted")
}

// PostsByCategory lists published posts in the category with the given
// slug.
func (h *Taxonomy) PostsByCategory(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, "find category", err)
		return
	}
	if category == nil {
		respondNotFound(w)
		return
	}

	posts, err := h.posts.ListByCategory(category.ID)
	if err != nil {
		respondError(w, "list posts by category", err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{
		"category": category,
		"posts":    posts,
	})
}

// --- Countries ---

// countryInput extends the lookup payload with country attributes.
type countryInput struct {
	lookupInput
	Code      string  `json:"code"`
	FlagEmoji *string `json:"flag_emoji"`
	Region    *string `json:"region"`
}

func (h *Taxonomy) CountriesList(w http.ResponseWriter, r *http.Request) {
	countries, err := h.countries.List()
	if err != nil {
		respondError(w, "list countries", err)
		return
	}
	respondData(w, http.StatusOK, countries)
}

func (h *Taxonomy) CountryCreate(w http.ResponseWriter, r *http.Request) {
	var in countryInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" {
		respondBadRequest(w, "name and code are required")
		return
	}
	countrySlug := in.resolveSlug()
	if countrySlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	country, err := h.countries.Create(&models.Country{
		Name:        in.Name,
		Slug:        countrySlug,
		Code:        strings.ToUpper(strings.TrimSpace(in.Code)),
		FlagEmoji:   in.FlagEmoji,
		Region:      in.Region,
		Description: in.Description,
	})
	if err != nil {
		respondError(w, "create country", err)
		return
	}
	respondData(w, http.StatusCreated, country)
}

func (h *Taxonomy) CountryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid country id")
		return
	}
	var in countryInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Code) == "" {
		respondBadRequest(w, "name and code are required")
		return
	}
	countrySlug := in.resolveSlug()
	if countrySlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	country, err := h.countries.Update(&models.Country{
		ID:          id,
		Name:        in.Name,
		Slug:        countrySlug,
		Code:        strings.ToUpper(strings.TrimSpace(in.Code)),
		FlagEmoji:   in.FlagEmoji,
		Region:      in.Region,
		Description: in.Description,
	})
	if err != nil {
		respondError(w, "update country", err)
		return
	}
	if country == nil {
		respondNotFound(w)
		return
	}
	respondData(w, http.StatusOK, country)
}

func (h *Taxonomy) CountryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid country id")
		return
	}
	deleted, err := h.countries.Delete(id)
	if err != nil {
		respondError(w, "delete country", err)
		return
	}
	if !deleted {
		respondNotFound(w)
		return
	}
	respondMessage(w, http.StatusOK, "country deleted")
}

// PostsByCountry lists published posts for the country with the given
// slug.
func (h *Taxonomy) PostsByCountry(w http.ResponseWriter, r *http.Request) {
	country, err := h.countries.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, "find country", err)
		return
	}
	if country == nil {
		respondNotFound(w)
		return
	}

	posts, err := h.posts.ListByCountry(country.ID)
	if err != nil {
		respondError(w, "list posts by country", err)
		return
	}
	respondData(w, http.StatusOK, map[string]any{
		"country": country,
		"posts":   posts,
	})
}

// --- Degree levels ---

func (h *Taxonomy) DegreeLevelsList(w http.ResponseWriter, r *http.Request) {
	levels, err := h.degrees.List()
	if err != nil {
		respondError(w, "list degree levels", err)
		return
	}
	respondData(w, http.StatusOK, levels)
}

func (h *Taxonomy) DegreeLevelCreate(w http.ResponseWriter, r *http.Request) {
	var in lookupInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondBadRequest(w, "name is required")
		return
	}
	levelSlug := in.resolveSlug()
	if levelSlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	level, err := h.degrees.Create(in.Name, levelSlug, in.Description)
	if err != nil {
		respondError(w, "create degree level", err)
		return
	}
	respondData(w, http.StatusCreated, level)
}

func (h *Taxonomy) DegreeLevelUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid degree level id")
		return
	}
	var in lookupInput
	if msg := decodeBody(r, &in); msg != "" {
		respondBadRequest(w, msg)
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		respondBadRequest(w, "name is required")
		return
	}
	levelSlug := in.resolveSlug()
	if levelSlug == "" {
		respondBadRequest(w, "name must contain at least one alphanumeric character")
		return
	}

	level, err := h.degrees.Update(id, in.Name, levelSlug, in.Description)
	if err != nil {
		respondError(w, "update degree level", err)
		return
	}
	if level == nil {
		respondNotFound(w)
		return
	}
	respondData(w, http.StatusOK, level)
}

func (h *Taxonomy) DegreeLevelDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondBadRequest(w, "invalid degree level id")
		return
	}
	deleted, err := h.degrees.Delete(id)
	if err != nil {
		respondError(w, "delete degree level", err)
		return
	}
	if !deleted {
		respondNotFound(w)
		return
	}
	respondMessage(w, http.StatusOK, "degree level deleted")
}

// --- Read-only lookups ---

func (h *Taxonomy) FundingTypesList(w http.ResponseWriter, r *http.Request) {
	types, err := h.funding.List()
	if err != nil {
		respondError(w, "list funding types", err)
		return
	}
	respondData(w, http.StatusOK, types)
}

func (h *Taxonomy) EmploymentTypesList(w http.ResponseWriter, r *http.Request) {
	types, err := h.employment.List()
	if err != nil {
		respondError(w, "list employment types", err)
		return
	}
	respondData(w, http.StatusOK, types)
}

// DailyQuote returns the newest quote.
func (h *Taxonomy) DailyQuote(w http.ResponseWriter, r *http.Request) {
	quote, err := h.quotes.Latest()
	if err != nil {
		respondError(w, "get daily quote", err)
		return
	}
	if quote == nil {
		respondNotFound(w)
		return
	}
	respondData(w, http.StatusOK, quote)
}
