// Package hcl provides the concrete HCL implementation of the bindings
// Loader interface defined in the `config` package. It is responsible for
// file parsing and HCL-to-model translation.
//
// The expected document shape is:
//
//	bindings "kotlin" {
//	  custom_type "Uuid" {
//	    type_name   = "UUID"
//	    imports     = ["java.util.UUID"]
//	    into_custom = "UUID.fromString({})"
//	    from_custom = "{}.toString()"
//	  }
//	}
package hcl
