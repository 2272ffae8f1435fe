// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workflow

import "scholargate/internal/models"

// justPublished reports whether a status write is the transition into
// published. previous must be read from the store before the write is
// applied: the request payload alone cannot distinguish "already
// published" from "just published", and editing an already published
// post must not re-notify subscribers.
func justPublished(previous, requested models.PostStatus) bool {
	return requested == models.PostStatusPublished && previous != models.PostStatusPublished
}
