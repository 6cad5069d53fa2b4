// Package shoplens extracts a best-effort structured summary from a public
// Shopify storefront: products, policies, brand context, contact details,
// and navigation. Individual extraction stages degrade independently, so a
// reachable but unusual store yields a partial result plus warnings rather
// than an error.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/, chi/).
package shoplens
