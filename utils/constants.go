// File: utils/constants.go
package utils

import "time"

// ProfileKeyPrefix is the prefix used for Redis user profile keys.
const ProfileKeyPrefix = "profile:"

// ConversationKeyPrefix is the prefix used for Redis conversation context keys.
const ConversationKeyPrefix = "conv:"

// ConversationTTL is the time-to-live for conversation context entries.
const ConversationTTL = 30 * time.Minute
