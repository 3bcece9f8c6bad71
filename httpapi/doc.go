// Package httpapi exposes a faqit engine over HTTP using gin.
//
// Routes:
//
//	POST /api/v1/faq/answer   answer a question
//	GET  /api/v1/faq          list all entries
//	GET  /api/v1/faq/:id      fetch one entry
//	GET  /healthz             engine state
package httpapi
