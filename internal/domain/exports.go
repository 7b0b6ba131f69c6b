package domain

import (
	interfaces "turbofanvpf/internal/domain/interfaces"
	types "turbofanvpf/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PhaseName              = types.PhaseName
	Fingerprint            = types.Fingerprint
	RunID                  = types.RunID
	PolarPoint             = types.PolarPoint
	OperatingPoint         = types.OperatingPoint
	FlightPhase            = types.FlightPhase
	StrategyKind           = types.StrategyKind
	Strategy               = types.Strategy
	ComparisonMetrics      = types.ComparisonMetrics
	CompressibilityWarning = types.CompressibilityWarning
	PhaseResult            = types.PhaseResult
	Outcome                = types.Outcome
	OutcomeRecord          = types.OutcomeRecord
	EvaluateRequest        = types.EvaluateRequest
	EvaluateResponse       = types.EvaluateResponse
	PolarRegistered        = types.PolarRegistered
	ScheduleSpec           = types.ScheduleSpec
	CorrectionSpec         = types.CorrectionSpec
	ErrorBody              = types.ErrorBody
	OutOfDomainError       = types.OutOfDomainError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	EvaluationService = interfaces.EvaluationService
	PolarStore        = interfaces.PolarStore
	ResultStore       = interfaces.ResultStore
	PolarRegistry     = interfaces.PolarRegistry
	RelayClient       = interfaces.RelayClient
)

// Strategy kinds.
const (
	StrategyFixed = types.StrategyFixed
	StrategyMaxLD = types.StrategyMaxLD
	StrategyMinCD = types.StrategyMinCD
)

// Error kinds.
var (
	ErrOutOfDomain    = types.ErrOutOfDomain
	ErrInvalidMach    = types.ErrInvalidMach
	ErrEmptyTable     = types.ErrEmptyTable
	ErrDivisionByZero = types.ErrDivisionByZero
	ErrUnsortedAngles = types.ErrUnsortedAngles
	ErrNonFiniteValue = types.ErrNonFiniteValue
)

// Strategy constructors and helpers.
var (
	Fixed         = types.Fixed
	MaxLoverD     = types.MaxLoverD
	MinCD         = types.MinCD
	ParseTarget   = types.ParseTarget
	DefaultPhases = types.DefaultPhases
	Records       = types.Records
)
