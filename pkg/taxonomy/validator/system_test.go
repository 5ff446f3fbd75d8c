package validator

import (
	"testing"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

func baseSystem() resource.System {
	return resource.System{
		FidesModel:              model("order_service"),
		SystemType:              "Service",
		DataResponsibilityTitle: resource.TitleController,
	}
}

func TestValidator_ValidateSystem(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*resource.System)
		wantErr bool
		errType taxErrors.ErrorType
	}{
		{
			name:    "minimal valid system",
			mutate:  func(s *resource.System) {},
			wantErr: false,
		},
		{
			name:    "missing system type",
			mutate:  func(s *resource.System) { s.SystemType = "" },
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
		{
			name:    "unknown responsibility title",
			mutate:  func(s *resource.System) { s.DataResponsibilityTitle = "Owner" },
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
		{
			name:    "invalid country code",
			mutate:  func(s *resource.System) { s.ThirdCountryTransfers = []string{"Germany"} },
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidCountryCode,
		},
		{
			name: "valid egress flows",
			mutate: func(s *resource.System) {
				s.Egress = []resource.DataFlow{
					{FidesKey: "analytics_system", Type: resource.FlowableSystem},
					{FidesKey: "user", Type: resource.FlowableUser},
				}
			},
			wantErr: false,
		},
		{
			name: "unknown flow type",
			mutate: func(s *resource.System) {
				s.Ingress = []resource.DataFlow{{FidesKey: "orders_db", Type: "database"}}
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
		{
			name: "user key with non-user type",
			mutate: func(s *resource.System) {
				s.Ingress = []resource.DataFlow{{FidesKey: "user", Type: resource.FlowableSystem}}
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeUserTypeMismatch,
		},
		{
			name: "user type with non-user key",
			mutate: func(s *resource.System) {
				s.Egress = []resource.DataFlow{{FidesKey: "customer", Type: resource.FlowableUser}}
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeUserTypeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system := baseSystem()
			tt.mutate(&system)

			v := NewValidator(testCountries)
			err := v.ValidateSystem(&system)

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSystem() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errTypes(t, err).HasErrorType(tt.errType) {
				t.Errorf("Expected error type %v, got: %v", tt.errType, err)
			}
		})
	}
}

func TestValidator_ValidateSystem_DeclarationFlows(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*resource.System)
		wantErr bool
		errType taxErrors.ErrorType
	}{
		{
			name: "declaration references declared egress",
			mutate: func(s *resource.System) {
				s.Egress = []resource.DataFlow{{FidesKey: "analytics_system", Type: resource.FlowableSystem}}
				s.PrivacyDeclarations = []resource.PrivacyDeclaration{
					{
						Name:    "analytics reporting",
						DataUse: "analytics",
						Egress:  []resource.FidesKey{"analytics_system"},
					},
				}
			},
			wantErr: false,
		},
		{
			name: "declaration egress without system egress",
			mutate: func(s *resource.System) {
				s.PrivacyDeclarations = []resource.PrivacyDeclaration{
					{
						Name:    "analytics reporting",
						DataUse: "analytics",
						Egress:  []resource.FidesKey{"analytics_system"},
					},
				}
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeMissingDirection,
		},
		{
			name: "declaration ingress without system ingress",
			mutate: func(s *resource.System) {
				s.Egress = []resource.DataFlow{{FidesKey: "analytics_system", Type: resource.FlowableSystem}}
				s.PrivacyDeclarations = []resource.PrivacyDeclaration{
					{
						Name:    "order intake",
						DataUse: "provide",
						Ingress: []resource.FidesKey{"storefront"},
					},
				}
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeMissingDirection,
		},
		{
			name: "declaration references undeclared flow key",
			mutate: func(s *resource.System) {
				s.Egress = []resource.DataFlow{{FidesKey: "analytics_system", Type: resource.FlowableSystem}}
				s.PrivacyDeclarations = []resource.PrivacyDeclaration{
					{
						Name:    "marketing export",
						DataUse: "advertising",
						Egress:  []resource.FidesKey{"marketing_system"},
					},
				}
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeUnknownDataFlow,
		},
		{
			name: "declaration without flow references never cross-checks",
			mutate: func(s *resource.System) {
				s.PrivacyDeclarations = []resource.PrivacyDeclaration{
					{
						Name:         "order history",
						DataUse:      "provide",
						DataSubjects: []resource.FidesKey{"customer"},
					},
				}
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system := baseSystem()
			tt.mutate(&system)

			v := NewValidator(testCountries)
			err := v.ValidateSystem(&system)

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSystem() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errTypes(t, err).HasErrorType(tt.errType) {
				t.Errorf("Expected error type %v, got: %v", tt.errType, err)
			}
		})
	}
}

func TestSystem_FlowHelpers(t *testing.T) {
	system := baseSystem()
	system.Egress = []resource.DataFlow{
		{FidesKey: "analytics_system", Type: resource.FlowableSystem},
		{FidesKey: "user", Type: resource.FlowableUser},
	}
	system.Ingress = []resource.DataFlow{
		{FidesKey: "orders_db", Type: resource.FlowableDataset},
	}

	egress := system.FlowKeys("egress")
	if len(egress) != 2 || egress[0] != "analytics_system" || egress[1] != "user" {
		t.Errorf("FlowKeys(egress) = %v", egress)
	}
	ingress := system.FlowKeys("ingress")
	if len(ingress) != 1 || ingress[0] != "orders_db" {
		t.Errorf("FlowKeys(ingress) = %v", ingress)
	}
	if keys := system.FlowKeys("sideways"); len(keys) != 0 {
		t.Errorf("FlowKeys(sideways) = %v, want empty", keys)
	}
}
