// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"
)

// Field names accepted by the validators in this package.
const (
	FieldUserID            = "user_id"
	FieldID                = "id"
	FieldName              = "name"
	FieldEmail             = "email"
	FieldUsername          = "username"
	FieldPassword          = "password"
	FieldLoginPassword     = "login_password"
	FieldPhone             = "phone"
	FieldObjective         = "objective"
	FieldPreferredLanguage = "preferred_language"
	FieldTitle             = "title"
	FieldContent           = "content"
	FieldTags              = "tags"
	FieldType              = "type"
	FieldLink              = "link"
	FieldDuration          = "duration_minutes"
	FieldDifficulty        = "difficulty"
	FieldLevels            = "levels"
	FieldStatus            = "status"
	FieldAnyUpdate         = "any_update"
)

const (
	maxNameLength     = 100
	maxEmailLength    = 255
	minUsernameLength = 3
	maxUsernameLength = 50
	minPasswordLength = 6
	maxPasswordLength = 72
	maxShortText      = 255
	maxTagLength      = 50
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}

func isValidEmail(s string) bool {
	if isBlank(s) || tooLong(s, maxEmailLength) {
		return false
	}
	addr, err := mail.ParseAddress(s)

	return err == nil && addr.Address == strings.TrimSpace(s)
}

func isValidUsername(s string) bool {
	n := utf8.RuneCountInString(s)
	return n >= minUsernameLength && n <= maxUsernameLength && !strings.ContainsAny(s, " \t\r\n")
}

func isValidLink(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// checkOptionalText validates a present optional field against a length limit.
func checkOptionalText(s *string, limit int) error {
	if s != nil && tooLong(*s, limit) {
		return ErrFieldTooLong
	}
	return nil
}
