package handlers

import "errors"

var errMissingAddressFields = errors.New("address, city and zipCode are required")
