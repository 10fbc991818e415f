// Freejido - Topic-Based Place Curation Map
// Copyright 2026 The Freejido Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/freejido/freejido

/*
Package validation wraps go-playground/validator v10 for Freejido submissions.

Store operations declare their input rules as `validate` struct tags on the
models package types and call ValidateStruct before mutating state. Failed
submissions are ignored by the caller rather than reported as errors, so the
returned SubmissionError is mostly used for debug logging.

Custom Tags:

	finite  - float field must not be NaN or +/-Inf

See Also:

  - github.com/go-playground/validator/v10: underlying library
  - internal/store: main consumer
*/
package validation
