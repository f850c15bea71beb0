package vybiumtensorpcs

import "github.com/vybium/vybium-tensor-pcs/internal/vybium-tensor-pcs/pcs"

// ErrorCode identifies the kind of failure a tensor-PCS operation reports.
type ErrorCode = pcs.ErrorCode

const (
	ErrUnknown                           = pcs.ErrUnknown
	ErrIncorrectPolynomialSize           = pcs.ErrIncorrectPolynomialSize
	ErrCodeLengthPowerOfTwoRequired      = pcs.ErrCodeLengthPowerOfTwoRequired
	ErrExtensionDegreePowerOfTwoRequired = pcs.ErrExtensionDegreePowerOfTwoRequired
	ErrUnalignedMessage                  = pcs.ErrUnalignedMessage
	ErrEncode                            = pcs.ErrEncode
	ErrVectorCommit                      = pcs.ErrVectorCommit
	ErrNumBatchedMismatch                = pcs.ErrNumBatchedMismatch
	ErrIncorrectQuerySize                = pcs.ErrIncorrectQuerySize
	ErrIncorrectEvaluation               = pcs.ErrIncorrectEvaluation
	ErrIncorrectPartialEvaluation        = pcs.ErrIncorrectPartialEvaluation
	ErrNumberOfOpeningProofs             = pcs.ErrNumberOfOpeningProofs
	ErrOpenedColumnSize                  = pcs.ErrOpenedColumnSize
	ErrPartialEvaluationSize             = pcs.ErrPartialEvaluationSize
	ErrOracleTooSmall                    = pcs.ErrOracleTooSmall
	ErrInvalidConfig                     = pcs.ErrInvalidConfig
)

// Error is a tensor-PCS operation failure, tagged with an ErrorCode so
// callers can branch on the failure kind without string matching.
type Error = pcs.Error
