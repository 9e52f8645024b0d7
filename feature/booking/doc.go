// Package booking accepts booking form submissions from the public site.
// Submissions are validated against the current site content (bookable
// quests, time slots, player counts) and acknowledged; actual scheduling
// happens over the phone or WhatsApp, so nothing is persisted.
package booking
