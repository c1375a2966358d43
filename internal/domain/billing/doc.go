// Package billing contains the Billing bounded context.
// This context owns customer invoices (with their line items), the
// company-wide billing settings used as invoice defaults, and the
// invoice status model shared by list views and document rendering.
package billing
