package submission

import "errors"

var (
	ErrValidation   = errors.New("submission failed validation")
	ErrPersistence  = errors.New("submission could not be saved")
	ErrNotification = errors.New("staff notification could not be sent")
)
