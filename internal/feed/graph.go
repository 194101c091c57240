package feed

// ToggleFollow flips the follow edge from actor to target and returns
// whether the actor is following the target afterwards.
//
// Both sides of the relation (actor.Following and target.Followers) are
// replaced in a single write; no reader can observe one side updated
// without the other.
//
// Self-follow is a complete no-op: no state change, no notification, and
// the returned state is always "not following".
//
// A follow notification is emitted to the target only on the transition to
// following. Unfollow emits nothing - notifications are not retracted.
func (s *Store) ToggleFollow(actorID, targetID string) (bool, error) {
	if actorID == targetID {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	actorIdx := s.userIndexLocked(actorID)
	if actorIdx < 0 {
		return false, newUserNotFound(actorID)
	}
	targetIdx := s.userIndexLocked(targetID)
	if targetIdx < 0 {
		return false, newUserNotFound(targetID)
	}

	actor := s.users[actorIdx]
	wasFollowing := contains(actor.Following, targetID)

	users := copyUsers(s.users)
	if wasFollowing {
		users[actorIdx].Following = without(users[actorIdx].Following, targetID)
		users[targetIdx].Followers = without(users[targetIdx].Followers, actorID)
	} else {
		users[actorIdx].Following = withAppended(users[actorIdx].Following, targetID)
		users[targetIdx].Followers = withAppended(users[targetIdx].Followers, actorID)
	}
	s.users = users

	if !wasFollowing {
		s.emitLocked(NotifyFollow, users[actorIdx], targetID, "")
	}

	s.logger.Debug("follow toggled",
		"actor", actorID,
		"target", targetID,
		"following", !wasFollowing,
	)
	return !wasFollowing, nil
}
