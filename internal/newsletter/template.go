// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package newsletter renders announcement emails for newly published
// scholarship posts and fans them out to subscribers in rate-limited
// batches.
package newsletter

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"scholargate/internal/models"
)

// emailToken marks the spot where each recipient's address is substituted
// into the rendered body. The body is rendered once per post and then
// personalized per recipient, so rendering cost does not grow with the
// subscriber count. The token sits inside an href, so it must survive
// html/template's URL attribute escaping byte-for-byte: letters and
// hyphens only, nothing the urlquery escaper rewrites.
const emailToken = "SUBSCRIBER-EMAIL-TOKEN"

var announcementTmpl = template.Must(template.New("announcement").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Scholarship Opportunity</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f5f5f5;">
  <table width="600" cellpadding="0" cellspacing="0" align="center" style="background:#ffffff;border-radius:8px;overflow:hidden;">
    <tr>
      <td style="background:#2563eb;padding:30px 20px;text-align:center;">
        <h1 style="color:#ffffff;margin:0;font-size:26px;">New Scholarship Available</h1>
      </td>
    </tr>
    {{if .FeaturedImage}}<tr><td><img src="{{.FeaturedImage}}" alt="{{.Title}}" style="width:100%;display:block;max-height:300px;object-fit:cover;"></td></tr>{{end}}
    <tr>
      <td style="padding:30px;">
        <h2 style="color:#1f2937;margin:0 0 15px 0;font-size:22px;">{{.Title}}</h2>
        {{if .Excerpt}}<p style="color:#4b5563;font-size:16px;line-height:1.6;">{{.Excerpt}}</p>{{end}}
        {{if .UniversityName}}
        <div style="background:#eff6ff;padding:15px;border-radius:6px;margin:20px 0;">
          <strong style="color:#1e40af;">University:</strong>
          <p style="color:#1e40af;margin:5px 0 0 0;">{{.UniversityName}}</p>
        </div>
        {{end}}
        {{if .Deadline}}
        <div style="background:#fff3cd;border-left:4px solid #ffc107;padding:15px;margin:20px 0;">
          <strong style="color:#856404;">Application Deadline:</strong>
          <p style="color:#856404;margin:5px 0 0 0;">{{.Deadline}}</p>
        </div>
        {{end}}
        {{if .Benefits}}
        <div style="margin:20px 0;">
          <h3 style="color:#1f2937;font-size:18px;margin-bottom:10px;">Benefits</h3>
          <div style="color:#4b5563;line-height:1.6;">{{.Benefits}}</div>
        </div>
        {{end}}
        {{if .Eligibility}}
        <div style="margin:20px 0;">
          <h3 style="color:#1f2937;font-size:18px;margin-bottom:10px;">Eligibility Criteria</h3>
          <div style="color:#4b5563;line-height:1.6;">{{.Eligibility}}</div>
        </div>
        {{end}}
        <table width="100%" cellpadding="0" cellspacing="0" style="margin:30px 0;">
          <tr><td align="center">
            <a href="{{.PostURL}}" style="display:inline-block;background:#f97316;color:#ffffff;text-decoration:none;padding:15px 40px;border-radius:6px;font-weight:bold;">View Full Details &amp; Apply</a>
          </td></tr>
        </table>
      </td>
    </tr>
    <tr>
      <td style="background:#f9fafb;padding:25px;text-align:center;border-top:1px solid #e5e7eb;">
        <p style="color:#6b7280;font-size:14px;margin:0 0 10px 0;">
          <strong style="color:#1f2937;">Scholarship Gateway</strong><br>
          Your trusted source for international scholarships
        </p>
        <p style="color:#9ca3af;font-size:12px;margin:15px 0 0 0;">
          You&#39;re receiving this because you subscribed to scholarship updates.<br>
          <a href="{{.UnsubscribeURL}}" style="color:#2563eb;text-decoration:none;">Unsubscribe</a>
        </p>
      </td>
    </tr>
  </table>
</body>
</html>
`))

// announcementData is the view model for the announcement template.
type announcementData struct {
	Title          string
	Excerpt        string
	FeaturedImage  string
	UniversityName string
	Deadline       string
	Benefits       template.HTML
	Eligibility    template.HTML
	PostURL        string
	UnsubscribeURL string
}

// RenderAnnouncement renders the announcement email body for a post. The
// returned HTML still contains the recipient token; use personalize to
// produce the final per-recipient body.
func RenderAnnouncement(post *models.Post, baseURL string) (string, error) {
	baseURL = strings.TrimRight(baseURL, "/")

	data := announcementData{
		Title:          post.Title,
		Excerpt:        post.Excerpt,
		PostURL:        baseURL + "/blog/" + post.Slug,
		UnsubscribeURL: baseURL + "/unsubscribe?email=" + emailToken,
	}
	if post.FeaturedImage != nil {
		data.FeaturedImage = *post.FeaturedImage
	}
	if post.UniversityName != nil {
		data.UniversityName = *post.UniversityName
	}
	if post.ApplicationDeadline != nil {
		data.Deadline = post.ApplicationDeadline.Format("January 2, 2006")
	}
	if post.ScholarshipBenefits != nil {
		data.Benefits = multiline(*post.ScholarshipBenefits)
	}
	if post.EligibilityCriteria != nil {
		data.Eligibility = multiline(*post.EligibilityCriteria)
	}

	var buf bytes.Buffer
	if err := announcementTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render announcement: %w", err)
	}
	return buf.String(), nil
}

// personalize substitutes the recipient's address into a rendered body.
func personalize(body, email string) string {
	return strings.ReplaceAll(body, emailToken, url.QueryEscape(email))
}

// multiline escapes free text and turns newlines into <br> so plain-text
// admin input keeps its line structure in the HTML email.
func multiline(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Subject returns the email subject line for a post announcement.
func Subject(post *models.Post) string {
	return "New Scholarship: " + post.Title
}
