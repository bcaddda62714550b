package businessapp

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

const (
	// StorefrontPhotosMin is the minimum number of storefront photos required.
	StorefrontPhotosMin = 2
	// StorefrontPhotosMax is the maximum number of storefront photos accepted.
	StorefrontPhotosMax = 5
)

// ErrDocumentsAreNotConstructed is returned when using improperly initialized Documents.
var ErrDocumentsAreNotConstructed = errors.New(
	"Documents must be created via NewDocuments or RestoreDocuments constructors")

// Documents holds the file references submitted with a business application.
// Each reference is an opaque storage path returned by the upload service.
//
// Required documents: business license, tax certificate, owner ID, address proof,
// and between StorefrontPhotosMin and StorefrontPhotosMax storefront photos.
// The health certificate is optional.
type Documents struct {
	license           string
	taxCertificate    string
	ownerID           string
	addressProof      string
	healthCertificate string
	storefrontPhotos  []string

	guard guard.ConstructorGuard
}

// NewDocuments creates a validated Documents value.
// All mandatory references must be non-empty and the storefront photo count
// must be within [StorefrontPhotosMin, StorefrontPhotosMax].
// The health certificate may be empty.
func NewDocuments(
	license string,
	taxCertificate string,
	ownerID string,
	addressProof string,
	healthCertificate string,
	storefrontPhotos []string,
) (Documents, error) {
	docs := RestoreDocuments(license, taxCertificate, ownerID, addressProof,
		healthCertificate, storefrontPhotos)

	var err error
	if license == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("license"))
	}
	if taxCertificate == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("tax certificate"))
	}
	if ownerID == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("owner ID"))
	}
	if addressProof == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address proof"))
	}
	if count := len(storefrontPhotos); count < StorefrontPhotosMin || count > StorefrontPhotosMax {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError(
			"storefront photos", count, StorefrontPhotosMin, StorefrontPhotosMax))
	}
	for _, photo := range storefrontPhotos {
		if photo == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError("storefront photo"))
			break
		}
	}

	if err != nil {
		return Documents{}, err
	}

	return docs, nil
}

// RestoreDocuments reconstructs a Documents value from persistent storage
// without re-running submission validation. Completeness of restored documents
// is still observable through HasAllRequiredDocuments.
func RestoreDocuments(
	license string,
	taxCertificate string,
	ownerID string,
	addressProof string,
	healthCertificate string,
	storefrontPhotos []string,
) Documents {
	photos := make([]string, len(storefrontPhotos))
	copy(photos, storefrontPhotos)

	return Documents{
		license:           license,
		taxCertificate:    taxCertificate,
		ownerID:           ownerID,
		addressProof:      addressProof,
		healthCertificate: healthCertificate,
		storefrontPhotos:  photos,
		guard:             guard.NewConstructorGuard(),
	}
}

// License returns the business license reference.
func (d Documents) License() string {
	return d.license
}

// TaxCertificate returns the tax certificate reference.
func (d Documents) TaxCertificate() string {
	return d.taxCertificate
}

// OwnerID returns the owner identity document reference.
func (d Documents) OwnerID() string {
	return d.ownerID
}

// AddressProof returns the address proof reference.
func (d Documents) AddressProof() string {
	return d.addressProof
}

// HealthCertificate returns the optional health certificate reference.
// Empty when the applicant did not provide one.
func (d Documents) HealthCertificate() string {
	return d.healthCertificate
}

// StorefrontPhotos returns a copy of the storefront photo references.
func (d Documents) StorefrontPhotos() []string {
	photos := make([]string, len(d.storefrontPhotos))
	copy(photos, d.storefrontPhotos)
	return photos
}

// HasAllRequiredDocuments reports whether every mandatory document is present.
// Holds iff license, tax certificate, owner ID and address proof are all
// non-empty and the storefront photo count is within the accepted range.
func (d Documents) HasAllRequiredDocuments() bool {
	return d.license != "" &&
		d.taxCertificate != "" &&
		d.ownerID != "" &&
		d.addressProof != "" &&
		len(d.storefrontPhotos) >= StorefrontPhotosMin &&
		len(d.storefrontPhotos) <= StorefrontPhotosMax
}

// Validate checks if the Documents value is properly constructed.
func (d Documents) Validate() error {
	return d.guard.Validate(ErrDocumentsAreNotConstructed)
}
