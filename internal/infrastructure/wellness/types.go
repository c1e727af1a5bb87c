package wellness

import (
	"fmt"
	"strconv"
	"time"
)

// Wire envelopes for the wellness API. Only the fields the sync jobs consume
// are decoded; everything else in the payloads is ignored.

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

type domainResponse struct {
	Data struct {
		HeaderLabel string `json:"headerLabel"`
		ItemsGroups []struct {
			GroupLabel string       `json:"groupLabel"`
			GroupKey   string       `json:"groupKey"`
			Items      []domainItem `json:"items"`
		} `json:"itemsGroups"`
	} `json:"data"`
}

type domainItem struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type customerSearchResponse struct {
	Data struct {
		DataSet []customerRow `json:"dataSet"`
		HasMore bool          `json:"hasMore"`
	} `json:"data"`
}

type customerRow struct {
	CustomerID                  *int64  `json:"customerId"`
	CustomerName                *string `json:"customerName"`
	DateOfBirth                 *string `json:"dateOfBirth"`
	MedicalCertificateValidity  *string `json:"medicalCertificateValidity"`
	CustomerLastAccess          *string `json:"customerLastAccess"`
	TrainingReferenceOperatorID *int64  `json:"trainingReferenceOperatorId"`
	MainReferenceOperatorID     *int64  `json:"mainReferenceOperatorId"`
}

type authorizationSearchResponse struct {
	Data struct {
		DataSet []authorizationRow `json:"dataSet"`
		HasMore bool               `json:"hasMore"`
	} `json:"data"`
}

type authorizationRow struct {
	SaleID                  *int64  `json:"saleId"`
	CustomerID              *int64  `json:"customerId"`
	SaleDate                *string `json:"saleDate"`
	Start                   *string `json:"start"`
	End                     *string `json:"end"`
	Renewed                 *bool   `json:"renewed"`
	SalePackageName         *string `json:"salePackageName"`
	RenewalSalePackageName  *string `json:"renewalSalePackageName"`
	MainReferenceOperatorID *int64  `json:"mainReferenceOperatorId"`
}

// CatalogItem is one entry of a grouped-items feed (consultants, packages).
type CatalogItem struct {
	ID     int64
	Label  string
	Active bool
}

// CustomerRecord is one row of the customer search feed.
type CustomerRecord struct {
	CustomerID                  int64
	CustomerName                string
	DateOfBirth                 *time.Time
	MedicalCertificateValidity  *time.Time
	LastAccess                  *time.Time
	TrainingReferenceOperatorID *int64
}

// AuthorizationRecord is one row of the authorization search feed. Sale
// package names are free text; no package id is present on these rows.
type AuthorizationRecord struct {
	SaleID                  int64
	CustomerID              int64
	SaleDate                *time.Time
	Start                   *time.Time
	End                     *time.Time
	Renewed                 bool
	SalePackageName         string
	RenewalSalePackageName  string
	MainReferenceOperatorID *int64
}

// The API emits local timestamps without a zone, occasionally bare dates.
var dateLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date value %q", value)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (i domainItem) toCatalogItem() (CatalogItem, error) {
	id, err := strconv.ParseInt(i.Value, 10, 64)
	if err != nil {
		return CatalogItem{}, fmt.Errorf("item value %q is not an id: %w", i.Value, err)
	}
	return CatalogItem{ID: id, Label: i.Label, Active: i.Active}, nil
}

func (r customerRow) toRecord() (CustomerRecord, error) {
	if r.CustomerID == nil {
		return CustomerRecord{}, fmt.Errorf("customer row is missing customerId")
	}
	if r.CustomerName == nil {
		return CustomerRecord{}, fmt.Errorf("customer row %d is missing customerName", *r.CustomerID)
	}

	rec := CustomerRecord{
		CustomerID:                  *r.CustomerID,
		CustomerName:                *r.CustomerName,
		TrainingReferenceOperatorID: r.TrainingReferenceOperatorID,
	}

	var err error
	if rec.DateOfBirth, err = parseOptionalDate(r.DateOfBirth); err != nil {
		return CustomerRecord{}, fmt.Errorf("customer row %d: %w", rec.CustomerID, err)
	}
	if rec.MedicalCertificateValidity, err = parseOptionalDate(r.MedicalCertificateValidity); err != nil {
		return CustomerRecord{}, fmt.Errorf("customer row %d: %w", rec.CustomerID, err)
	}
	if rec.LastAccess, err = parseOptionalDate(r.CustomerLastAccess); err != nil {
		return CustomerRecord{}, fmt.Errorf("customer row %d: %w", rec.CustomerID, err)
	}

	return rec, nil
}

func (r authorizationRow) toRecord() (AuthorizationRecord, error) {
	if r.SaleID == nil {
		return AuthorizationRecord{}, fmt.Errorf("authorization row is missing saleId")
	}
	if r.CustomerID == nil {
		return AuthorizationRecord{}, fmt.Errorf("authorization row %d is missing customerId", *r.SaleID)
	}

	rec := AuthorizationRecord{
		SaleID:                  *r.SaleID,
		CustomerID:              *r.CustomerID,
		MainReferenceOperatorID: r.MainReferenceOperatorID,
	}
	if r.Renewed != nil {
		rec.Renewed = *r.Renewed
	}
	if r.SalePackageName != nil {
		rec.SalePackageName = *r.SalePackageName
	}
	if r.RenewalSalePackageName != nil {
		rec.RenewalSalePackageName = *r.RenewalSalePackageName
	}

	var err error
	if rec.SaleDate, err = parseOptionalDate(r.SaleDate); err != nil {
		return AuthorizationRecord{}, fmt.Errorf("authorization row %d: %w", rec.SaleID, err)
	}
	if rec.Start, err = parseOptionalDate(r.Start); err != nil {
		return AuthorizationRecord{}, fmt.Errorf("authorization row %d: %w", rec.SaleID, err)
	}
	if rec.End, err = parseOptionalDate(r.End); err != nil {
		return AuthorizationRecord{}, fmt.Errorf("authorization row %d: %w", rec.SaleID, err)
	}

	return rec, nil
}
