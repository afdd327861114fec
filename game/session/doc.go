// Package session provides in-memory session management for the sliding puzzle.
//
// Manager stores one engine per session and is safe for concurrent use.
// Session IDs are case-insensitive; when none is given the manager
// generates an 8-character hex ID from a random UUID.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
// Sessions live only as long as the process. CleanupExpiredSessions drops
// sessions that have not been touched within a given age.
package session
