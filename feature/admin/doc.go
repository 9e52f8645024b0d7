// Package admin provides the content editing surface: username/password
// sign-in issuing signed session tokens, save-all publishing of edited
// content to the remote tables, gallery image uploads, and manual refresh.
//
// Admin sign-in requires both a database connection (the admin_users table)
// and a configured token secret. Without them every admin endpoint reports
// the service as not configured.
package admin
