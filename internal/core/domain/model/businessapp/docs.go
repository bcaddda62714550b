// Package businessapp contains the business application aggregate and its value objects.
// A business application is a vendor's request to register a new storefront,
// reviewed by an administrator who either approves it (creating a business)
// or rejects it with a reason. The aggregate enforces document completeness
// and one-directional status transitions out of Pending.
package businessapp
