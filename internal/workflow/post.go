// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workflow

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"scholargate/internal/models"
	"scholargate/internal/newsletter"
	"scholargate/internal/slug"
)

// excerptLength is the prefix of the body used when no excerpt is supplied.
const excerptLength = 200

// PostStore is the persistence surface the post workflow needs.
// Satisfied by *store.PostStore.
type PostStore interface {
	FindByID(id uuid.UUID) (*models.Post, error)
	Create(p *models.Post) (*models.Post, error)
	Update(p *models.Post) (*models.Post, error)
	UpdateStatus(id uuid.UUID, status models.PostStatus) (*models.Post, error)
	Delete(id uuid.UUID) (bool, error)
}

// TagStore is the tag surface the reconciler needs. Satisfied by *store.TagStore.
type TagStore interface {
	FindBySlug(slug string) (*models.Tag, error)
	Create(name, slug string) (*models.Tag, error)
	UnlinkAll(postID uuid.UUID) error
	Link(postID, tagID uuid.UUID) error
}

// DegreeLevelLinker is the degree-level link surface the reconciler needs.
// Satisfied by *store.DegreeLevelStore.
type DegreeLevelLinker interface {
	UnlinkAll(postID uuid.UUID) error
	LinkMany(postID uuid.UUID, degreeLevelIDs []uuid.UUID) error
}

// SubscriberSource yields the current active recipient list. Read fresh
// at dispatch time, not when the publish was requested.
type SubscriberSource interface {
	ListActiveEmails() ([]string, error)
}

// Notifier fans an announcement out to recipients.
// Satisfied by *newsletter.Dispatcher.
type Notifier interface {
	Dispatch(ctx context.Context, post *models.Post, recipients []string) (newsletter.Result, error)
}

// PostInput carries a create or update payload. Pointer fields distinguish
// "not provided" (nil, leave untouched on update) from provided values;
// a provided empty string on an optional field clears it. Tags and
// DegreeLevelIDs follow the same rule at the slice level: nil means no
// relation change, an empty slice means remove every link.
type PostInput struct {
	Title         *string            `json:"title"`
	Slug          *string            `json:"slug"`
	Excerpt       *string            `json:"excerpt"`
	Body          *string            `json:"content"`
	FeaturedImage *string            `json:"featured_image"`
	IsFeatured    *bool              `json:"is_featured"`
	Status        *models.PostStatus `json:"status"`

	MetaDescription *string    `json:"meta_description"`
	MetaKeywords    *string    `json:"meta_keywords"`
	SEOTitle        *string    `json:"seo_title"`
	CategoryID      *uuid.UUID `json:"category_id"`
	CountryID       *uuid.UUID `json:"country_id"`
	FundingTypeID   *uuid.UUID `json:"funding_type_id"`

	ScholarshipProvider   *string    `json:"scholarship_provider"`
	UniversityName        *string    `json:"university_name"`
	ApplicationDeadline   *time.Time `json:"application_deadline"`
	ProgramDuration       *string    `json:"program_duration"`
	EligibleNationalities *string    `json:"eligible_nationalities"`
	ApplicationFee        *bool      `json:"application_fee"`
	ApplicationFeeAmount  *string    `json:"application_fee_amount"`
	OfficialWebsite       *string    `json:"official_website"`
	ApplyLink             *string    `json:"apply_link"`
	ScholarshipBenefits   *string    `json:"scholarship_benefits"`
	EligibilityCriteria   *string    `json:"eligibility_criteria"`
	RequiredDocuments     *string    `json:"required_documents"`
	HowToApply            *string    `json:"how_to_apply"`
	Notes                 *string    `json:"notes"`
	ContactEmail          *string    `json:"contact_email"`
	ApplicationMode       *string    `json:"application_mode"`
	AvailableSeats        *int       `json:"available_seats"`
	ScheduledPublishAt    *time.Time `json:"scheduled_publish_at"`

	Tags           []string    `json:"tags"`
	DegreeLevelIDs []uuid.UUID `json:"degree_level_ids"`
}

// PostService orchestrates post creation, update, status changes, and the
// publish fan-out. All collaborators are passed in so the service tests
// in isolation with fakes.
type PostService struct {
	posts       PostStore
	tags        TagStore
	degrees     DegreeLevelLinker
	subscribers SubscriberSource
	notifier    Notifier

	// dispatches tracks detached fan-out goroutines. Wait is best-effort
	// on shutdown; an in-flight dispatch has no cancellation path.
	dispatches sync.WaitGroup
}

// NewPostService wires a PostService from its collaborators.
func NewPostService(posts PostStore, tags TagStore, degrees DegreeLevelLinker, subscribers SubscriberSource, notifier Notifier) *PostService {
	return &PostService{
		posts:       posts,
		tags:        tags,
		degrees:     degrees,
		subscribers: subscribers,
		notifier:    notifier,
	}
}

// Create validates and persists a new post, reconciles its relations, and
// fires the newsletter fan-out when the post is created directly as
// published. Relation failures never undo the persisted post.
func (s *PostService) Create(ctx context.Context, in *PostInput) (*models.Post, error) {
	title := deref(in.Title)
	body := deref(in.Body)
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, validationErr("title and content are required")
	}

	postSlug := slug.Generate(title)
	if in.Slug != nil && *in.Slug != "" {
		postSlug = slug.Generate(*in.Slug)
	}
	if postSlug == "" {
		return nil, validationErr("title must contain at least one alphanumeric character")
	}

	excerpt := excerptOf(body)
	if in.Excerpt != nil && *in.Excerpt != "" {
		excerpt = *in.Excerpt
	}

	status := models.PostStatusDraft
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, validationErr("status must be draft or published")
		}
		status = *in.Status
	}

	post := &models.Post{
		Title:    title,
		Slug:     postSlug,
		Excerpt:  excerpt,
		Body:     body,
		Status:   status,
		AuthorID: "admin",

		FeaturedImage:   optional(in.FeaturedImage),
		IsFeatured:      in.IsFeatured != nil && *in.IsFeatured,
		MetaDescription: optional(in.MetaDescription),
		MetaKeywords:    optional(in.MetaKeywords),
		SEOTitle:        optional(in.SEOTitle),
		CategoryID:      in.CategoryID,
		CountryID:       in.CountryID,
		FundingTypeID:   in.FundingTypeID,

		ScholarshipProvider:   optional(in.ScholarshipProvider),
		UniversityName:        optional(in.UniversityName),
		ApplicationDeadline:   in.ApplicationDeadline,
		ProgramDuration:       optional(in.ProgramDuration),
		EligibleNationalities: optional(in.EligibleNationalities),
		ApplicationFee:        in.ApplicationFee != nil && *in.ApplicationFee,
		ApplicationFeeAmount:  optional(in.ApplicationFeeAmount),
		OfficialWebsite:       optional(in.OfficialWebsite),
		ApplyLink:             optional(in.ApplyLink),
		ScholarshipBenefits:   optional(in.ScholarshipBenefits),
		EligibilityCriteria:   optional(in.EligibilityCriteria),
		RequiredDocuments:     optional(in.RequiredDocuments),
		HowToApply:            optional(in.HowToApply),
		Notes:                 optional(in.Notes),
		ContactEmail:          optional(in.ContactEmail),
		ApplicationMode:       optional(in.ApplicationMode),
		AvailableSeats:        in.AvailableSeats,
		ScheduledPublishAt:    in.ScheduledPublishAt,
	}

	created, err := s.posts.Create(post)
	if err != nil {
		return nil, err
	}

	// Relations reconcile after the post is committed. A tag failure is a
	// partial-success condition, not a reason to lose the post.
	s.reconcileTags(created.ID, in.Tags)
	s.reconcileDegreeLevels(created.ID, in.DegreeLevelIDs)

	if created.IsPublished() {
		s.notifyAsync(created)
	}

	return created, nil
}

// Update applies a partial update. Only fields present in the payload
// change; the slug is never recomputed from a title edit. The current
// status is read before the write so the publish transition is detected
// against persisted state.
func (s *PostService) Update(ctx context.Context, id uuid.UUID, in *PostInput) (*models.Post, error) {
	current, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	previousStatus := current.Status

	post := *current

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		post.Title = *in.Title
	}
	if in.Slug != nil && *in.Slug != "" {
		newSlug := slug.Generate(*in.Slug)
		if newSlug == "" {
			return nil, validationErr("slug must contain at least one alphanumeric character")
		}
		post.Slug = newSlug
	}
	if in.Body != nil && strings.TrimSpace(*in.Body) != "" {
		post.Body = *in.Body
	}
	if in.Excerpt != nil {
		post.Excerpt = *in.Excerpt
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, validationErr("status must be draft or published")
		}
		post.Status = *in.Status
	}
	if in.IsFeatured != nil {
		post.IsFeatured = *in.IsFeatured
	}
	if in.ApplicationFee != nil {
		post.ApplicationFee = *in.ApplicationFee
	}

	applyOptional(in.FeaturedImage, &post.FeaturedImage)
	applyOptional(in.MetaDescription, &post.MetaDescription)
	applyOptional(in.MetaKeywords, &post.MetaKeywords)
	applyOptional(in.SEOTitle, &post.SEOTitle)
	applyOptional(in.ScholarshipProvider, &post.ScholarshipProvider)
	applyOptional(in.UniversityName, &post.UniversityName)
	applyOptional(in.ProgramDuration, &post.ProgramDuration)
	applyOptional(in.EligibleNationalities, &post.EligibleNationalities)
	applyOptional(in.ApplicationFeeAmount, &post.ApplicationFeeAmount)
	applyOptional(in.OfficialWebsite, &post.OfficialWebsite)
	applyOptional(in.ApplyLink, &post.ApplyLink)
	applyOptional(in.ScholarshipBenefits, &post.ScholarshipBenefits)
	applyOptional(in.EligibilityCriteria, &post.EligibilityCriteria)
	applyOptional(in.RequiredDocuments, &post.RequiredDocuments)
	applyOptional(in.HowToApply, &post.HowToApply)
	applyOptional(in.Notes, &post.Notes)
	applyOptional(in.ContactEmail, &post.ContactEmail)
	applyOptional(in.ApplicationMode, &post.ApplicationMode)

	if in.CategoryID != nil {
		post.CategoryID = in.CategoryID
	}
	if in.CountryID != nil {
		post.CountryID = in.CountryID
	}
	if in.FundingTypeID != nil {
		post.FundingTypeID = in.FundingTypeID
	}
	if in.ApplicationDeadline != nil {
		post.ApplicationDeadline = in.ApplicationDeadline
	}
	if in.AvailableSeats != nil {
		post.AvailableSeats = in.AvailableSeats
	}
	if in.ScheduledPublishAt != nil {
		post.ScheduledPublishAt = in.ScheduledPublishAt
	}

	updated, err := s.posts.Update(&post)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	// Relation fields reconcile only when the payload carries them.
	s.reconcileTags(updated.ID, in.Tags)
	s.reconcileDegreeLevels(updated.ID, in.DegreeLevelIDs)

	if justPublished(previousStatus, updated.Status) {
		s.notifyAsync(updated)
	}

	return updated, nil
}

// UpdateStatus flips a post between draft and published, firing the
// newsletter fan-out on the transition into published.
func (s *PostService) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PostStatus) (*models.Post, error) {
	if !status.Valid() {
		return nil, validationErr("status must be draft or published")
	}

	current, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	updated, err := s.posts.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	if justPublished(current.Status, updated.Status) {
		s.notifyAsync(updated)
	}

	return updated, nil
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := s.posts.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Wait blocks until all detached fan-outs settle. Used by tests and by
// graceful shutdown as a best-effort drain.
func (s *PostService) Wait() {
	s.dispatches.Wait()
}

// reconcileTags replaces the post's tag set with desiredNames wholesale.
// A nil slice means the request did not touch tags. Names resolve to tags
// by slug with get-or-create semantics; duplicate names collapsing to one
// slug produce one link. Every failure here is logged and swallowed.
func (s *PostService) reconcileTags(postID uuid.UUID, desiredNames []string) {
	if desiredNames == nil {
		return
	}

	if err := s.tags.UnlinkAll(postID); err != nil {
		slog.Warn("tag reconciliation: unlink failed", "post_id", postID, "error", err)
	}

	seen := make(map[string]bool, len(desiredNames))
	for _, name := range desiredNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tagSlug := slug.Generate(name)
		if tagSlug == "" || seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true

		tag, err := s.tags.FindBySlug(tagSlug)
		if err != nil {
			slog.Warn("tag reconciliation: lookup failed", "post_id", postID, "tag", tagSlug, "error", err)
			continue
		}
		if tag == nil {
			tag, err = s.tags.Create(name, tagSlug)
			if err != nil {
				slog.Warn("tag reconciliation: create failed", "post_id", postID, "tag", tagSlug, "error", err)
				continue
			}
		}

		if err := s.tags.Link(postID, tag.ID); err != nil {
			slog.Warn("tag reconciliation: link failed", "post_id", postID, "tag", tagSlug, "error", err)
		}
	}
}

// reconcileDegreeLevels replaces the post's degree-level links wholesale.
// IDs are assumed valid — degree levels are seeded lookup data the
// workflow never creates.
func (s *PostService) reconcileDegreeLevels(postID uuid.UUID, desiredIDs []uuid.UUID) {
	if desiredIDs == nil {
		return
	}

	if err := s.degrees.UnlinkAll(postID); err != nil {
		slog.Warn("degree-level reconciliation: unlink failed", "post_id", postID, "error", err)
	}
	if len(desiredIDs) == 0 {
		return
	}
	if err := s.degrees.LinkMany(postID, desiredIDs); err != nil {
		slog.Warn("degree-level reconciliation: link failed", "post_id", postID, "error", err)
	}
}

// notifyAsync submits the newsletter fan-out on its own goroutine. The
// caller's response never waits on it, and any failure — reading the
// subscriber list or the dispatch itself — is terminal and logged.
func (s *PostService) notifyAsync(post *models.Post) {
	s.dispatches.Add(1)
	go func() {
		defer s.dispatches.Done()

		emails, err := s.subscribers.ListActiveEmails()
		if err != nil {
			slog.Error("newsletter fan-out: subscriber list failed", "post_id", post.ID, "error", err)
			return
		}

		if _, err := s.notifier.Dispatch(context.Background(), post, emails); err != nil {
			slog.Error("newsletter fan-out failed", "post_id", post.ID, "error", err)
		}
	}()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps a provided-but-empty string to NULL.
func optional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// applyOptional copies a provided value onto the target, clearing it when
// the provided value is empty. A nil source leaves the target untouched.
func applyOptional(src *string, dst **string) {
	if src == nil {
		return
	}
	if *src == "" {
		*dst = nil
		return
	}
	*dst = src
}

// excerptOf returns the default excerpt: a fixed-length prefix of the body.
func excerptOf(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptLength {
		return body
	}
	return string(runes[:excerptLength])
}
