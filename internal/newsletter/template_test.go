package newsletter

import (
	"strings"
	"testing"
	"time"

	"scholargate/internal/models"
)

func TestRenderAnnouncement_FullPost(t *testing.T) {
	uni := "TU Munich"
	deadline := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	benefits := "Full tuition\nTravel allowance"
	eligibility := "Open to all nationalities"
	img := "https://cdn.example.com/img.jpg"

	post := &models.Post{
		Title:               "DAAD Masters Scholarship",
		Slug:                "daad-masters-scholarship",
		Excerpt:             "Study in Germany fully funded.",
		FeaturedImage:       &img,
		UniversityName:      &uni,
		ApplicationDeadline: &deadline,
		ScholarshipBenefits: &benefits,
		EligibilityCriteria: &eligibility,
	}

	body, err := RenderAnnouncement(post, "https://scholargate.example/")
	if err != nil {
		t.Fatalf("RenderAnnouncement: %v", err)
	}

	for _, want := range []string{
		"DAAD Masters Scholarship",
		"Study in Germany fully funded.",
		"TU Munich",
		"October 15, 2026",
		"Full tuition<br>Travel allowance",
		"Open to all nationalities",
		`href="https://scholargate.example/blog/daad-masters-scholarship"`,
		"unsubscribe?email=" + emailToken,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestRenderAnnouncement_MinimalPost(t *testing.T) {
	post := &models.Post{
		Title: "Short Announcement",
		Slug:  "short-announcement",
	}

	body, err := RenderAnnouncement(post, "https://scholargate.example")
	if err != nil {
		t.Fatalf("RenderAnnouncement: %v", err)
	}

	if !strings.Contains(body, "Short Announcement") {
		t.Error("body missing title")
	}
	// Optional sections stay out when their fields are nil.
	for _, absent := range []string{"Application Deadline", "University:", "Benefits</h3>", "Eligibility Criteria</h3>"} {
		if strings.Contains(body, absent) {
			t.Errorf("body unexpectedly contains %q", absent)
		}
	}
}

func TestRenderAnnouncement_EscapesHTML(t *testing.T) {
	post := &models.Post{
		Title:   `<script>alert("x")</script>`,
		Slug:    "xss",
		Excerpt: "a & b < c",
	}

	body, err := RenderAnnouncement(post, "https://scholargate.example")
	if err != nil {
		t.Fatalf("RenderAnnouncement: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Error("title was not escaped")
	}
}

func TestSubject(t *testing.T) {
	post := &models.Post{Title: "Chevening 2027"}
	if got := Subject(post); got != "New Scholarship: Chevening 2027" {
		t.Errorf("Subject: got %q", got)
	}
}

func TestRenderAnnouncement_PersonalizeRenderedBody(t *testing.T) {
	post := &models.Post{
		Title: "Erasmus Mundus Joint Masters",
		Slug:  "erasmus-mundus-joint-masters",
	}

	body, err := RenderAnnouncement(post, "https://scholargate.example")
	if err != nil {
		t.Fatalf("RenderAnnouncement: %v", err)
	}

	// The token sits inside an href, so html/template runs it through its
	// URL attribute escaper. It must come out unchanged or personalize can
	// never find it.
	if !strings.Contains(body, "unsubscribe?email="+emailToken) {
		t.Fatalf("rendered body does not carry the recipient token intact")
	}

	got := personalize(body, "ana.pop@example.com")
	if !strings.Contains(got, "unsubscribe?email=ana.pop%40example.com") {
		t.Error("personalized body missing escaped recipient address in unsubscribe link")
	}
	if strings.Contains(got, emailToken) {
		t.Error("personalized body still contains the recipient token")
	}
}

func TestPersonalize(t *testing.T) {
	body := "click " + emailToken + " here " + emailToken
	got := personalize(body, "bob+test@example.com")
	want := "click bob%2Btest%40example.com here bob%2Btest%40example.com"
	if got != want {
		t.Errorf("personalize: got %q, want %q", got, want)
	}
}
