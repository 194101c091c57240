package feed

// emitLocked assembles a notification and prepends it to the notification
// sequence. The single constructor for all three notification types;
// postID is empty for follow notifications.
//
// Caller must hold s.mu. Self-notification suppression is the caller's
// responsibility - each operation knows whether actor and recipient
// coincide.
func (s *Store) emitLocked(t NotificationType, from User, toUserID, postID string) {
	n := Notification{
		ID:           s.ids.NewID(),
		Type:         t,
		FromUserID:   from.ID,
		FromUsername: from.Username,
		ToUserID:     toUserID,
		PostID:       postID,
		Timestamp:    s.clock.Now(),
		Read:         false,
	}

	notifications := make([]Notification, 0, len(s.notifications)+1)
	notifications = append(notifications, n)
	notifications = append(notifications, s.notifications...)
	s.notifications = notifications

	s.logger.Debug("notification emitted",
		"type", t,
		"from", from.ID,
		"to", toUserID,
		"post_id", postID,
	)
}

// NotificationsFor returns the recipient's notifications,
// most-recent-first.
func (s *Store) NotificationsFor(userID string) []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Notification
	for _, n := range s.notifications {
		if n.ToUserID == userID {
			out = append(out, n)
		}
	}
	return out
}

// UnreadCount returns the number of unread notifications addressed to the
// user. Recomputed on every call.
func (s *Store) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.notifications {
		if n.ToUserID == userID && !n.Read {
			count++
		}
	}
	return count
}

// MarkAllRead sets the read flag on every notification addressed to the
// user in a single pass and returns how many were flipped. This is the
// only bulk mutation in the model.
func (s *Store) MarkAllRead(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	flipped := 0
	notifications := make([]Notification, len(s.notifications))
	copy(notifications, s.notifications)
	for i := range notifications {
		if notifications[i].ToUserID == userID && !notifications[i].Read {
			notifications[i].Read = true
			flipped++
		}
	}
	s.notifications = notifications

	s.logger.Debug("notifications marked read", "user_id", userID, "count", flipped)
	return flipped
}
