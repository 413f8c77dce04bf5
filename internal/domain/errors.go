package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Category messages
	ErrMsgValidation           = "validation failed"
	ErrMsgInsufficientResource = "insufficient resource"
	ErrMsgNotReady             = "not ready"
	ErrMsgUnknownEntity        = "unknown entity"
	ErrMsgMalformedSave        = "malformed save"

	// Grid errors
	ErrMsgOutOfBounds   = "plot is out of bounds"
	ErrMsgSpaceOccupied = "space is occupied"
	ErrMsgLandLocked    = "land is locked"
	ErrMsgEmptyPlot     = "nothing planted here"

	// Item errors
	ErrMsgNotACrop    = "item is not a crop"
	ErrMsgItemLocked  = "item is locked"
	ErrMsgUnknownItem = "unknown item"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgMissingItems      = "missing required items"

	// Crafting errors
	ErrMsgUnknownRecipe      = "unknown recipe"
	ErrMsgRecipeLocked       = "recipe is locked"
	ErrMsgMissingIngredients = "missing ingredients"

	// Harvest errors
	ErrMsgCropNotReady = "crop is not ready"

	// Order errors
	ErrMsgUnknownOrder = "unknown order"

	// Land errors
	ErrMsgMaxExpansionReached = "maximum expansion reached"

	// Mascot errors
	ErrMsgUnknownMascot      = "unknown mascot"
	ErrMsgMascotAlreadyOwned = "mascot already owned"
	ErrMsgMascotNotOwned     = "mascot not owned"

	// Save errors
	ErrMsgInvalidSaveFormat = "invalid save format"
	ErrMsgSaveNotFound      = "save not found"
)

// Category errors. Every specific error below unwraps to exactly one of these,
// so callers can errors.Is against either the specific or the category error.
var (
	ErrValidation           = errors.New(ErrMsgValidation)
	ErrInsufficientResource = errors.New(ErrMsgInsufficientResource)
	ErrNotReady             = errors.New(ErrMsgNotReady)
	ErrUnknownEntity        = errors.New(ErrMsgUnknownEntity)
	ErrMalformedSave        = errors.New(ErrMsgMalformedSave)
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrOutOfBounds         = categorized(ErrValidation, ErrMsgOutOfBounds)
	ErrSpaceOccupied       = categorized(ErrValidation, ErrMsgSpaceOccupied)
	ErrLandLocked          = categorized(ErrValidation, ErrMsgLandLocked)
	ErrEmptyPlot           = categorized(ErrValidation, ErrMsgEmptyPlot)
	ErrNotACrop            = categorized(ErrValidation, ErrMsgNotACrop)
	ErrItemLocked          = categorized(ErrValidation, ErrMsgItemLocked)
	ErrRecipeLocked        = categorized(ErrValidation, ErrMsgRecipeLocked)
	ErrMaxExpansionReached = categorized(ErrValidation, ErrMsgMaxExpansionReached)
	ErrMascotAlreadyOwned  = categorized(ErrValidation, ErrMsgMascotAlreadyOwned)
	ErrMascotNotOwned      = categorized(ErrValidation, ErrMsgMascotNotOwned)

	// Resource errors
	ErrInsufficientFunds  = categorized(ErrInsufficientResource, ErrMsgInsufficientFunds)
	ErrMissingIngredients = categorized(ErrInsufficientResource, ErrMsgMissingIngredients)
	ErrMissingItems       = categorized(ErrInsufficientResource, ErrMsgMissingItems)

	// Timing errors
	ErrCropNotReady = categorized(ErrNotReady, ErrMsgCropNotReady)

	// Lookup errors
	ErrUnknownItem   = categorized(ErrUnknownEntity, ErrMsgUnknownItem)
	ErrUnknownRecipe = categorized(ErrUnknownEntity, ErrMsgUnknownRecipe)
	ErrUnknownOrder  = categorized(ErrUnknownEntity, ErrMsgUnknownOrder)
	ErrUnknownMascot = categorized(ErrUnknownEntity, ErrMsgUnknownMascot)
	ErrSaveNotFound  = categorized(ErrUnknownEntity, ErrMsgSaveNotFound)

	// Save errors
	ErrInvalidSaveFormat = categorized(ErrMalformedSave, ErrMsgInvalidSaveFormat)
)

type categoryError struct {
	msg      string
	category error
}

func (e *categoryError) Error() string { return e.msg }

func (e *categoryError) Unwrap() error { return e.category }

func categorized(category error, msg string) error {
	return &categoryError{msg: msg, category: category}
}
