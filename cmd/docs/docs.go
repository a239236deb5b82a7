// Package docs registers the OpenAPI document for the billing API with swag so that
// gin-swagger can serve it. Keep it in sync with the godoc annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/billing/tax-rules": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["billing"],
                "summary": "Show the configured tax rules",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.TaxRuleConfig"}}
                }
            }
        },
        "/billing/freight-lines": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["billing"],
                "summary": "Compute the freight breakdown of one trip",
                "parameters": [
                    {"description": "Trip", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FreightLineRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.FreightLine"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/billing/tax-breakups": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["billing"],
                "summary": "Compute GST and TDS on a taxable base",
                "parameters": [
                    {"description": "Profile and taxable base", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TaxBreakupRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TaxBreakupResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/billing/transporter-payments/summary": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Sums freight, expense and shortage over the trips, applies TDS on gross freight and layers additional charges on after tax.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["billing"],
                "summary": "Compute a transporter payment summary",
                "parameters": [
                    {"description": "Trips, profile and charges", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransporterPaymentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TransporterPaymentResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/billing/driver-payslips/summary": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["billing"],
                "summary": "Compute a driver payslip summary",
                "parameters": [
                    {"description": "Payslip inputs", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.DriverPayslipRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.PayslipSummary"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/billing/customer-invoices/summary": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["billing"],
                "summary": "Compute a customer invoice summary",
                "parameters": [
                    {"description": "Invoiced trips", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CustomerInvoiceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.InvoiceSummary"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        }
    },
    "definitions": {
        "decimal": {"type": "string", "example": "1250.50"},
        "error": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "domain.TaxRuleConfig": {
            "type": "object",
            "properties": {
                "defaultGstRate": {"$ref": "#/definitions/decimal"},
                "homeState": {"type": "string"},
                "customerTaxRate": {"$ref": "#/definitions/decimal"}
            }
        },
        "domain.TaxLeg": {
            "type": "object",
            "properties": {
                "rate": {"$ref": "#/definitions/decimal"},
                "amount": {"$ref": "#/definitions/decimal"}
            }
        },
        "domain.FreightLine": {
            "type": "object",
            "properties": {
                "tripID": {"type": "string"},
                "effectiveRate": {"$ref": "#/definitions/decimal"},
                "freightAmount": {"$ref": "#/definitions/decimal"},
                "totalExpense": {"$ref": "#/definitions/decimal"},
                "shortageAmount": {"$ref": "#/definitions/decimal"},
                "netPayable": {"$ref": "#/definitions/decimal"}
            }
        },
        "domain.PayslipSummary": {
            "type": "object",
            "properties": {
                "totalFixedIncome": {"$ref": "#/definitions/decimal"},
                "totalTripWiseIncome": {"$ref": "#/definitions/decimal"},
                "totalDeductions": {"$ref": "#/definitions/decimal"},
                "totalRepayments": {"$ref": "#/definitions/decimal"},
                "netSalary": {"$ref": "#/definitions/decimal"},
                "totalUnclassified": {"$ref": "#/definitions/decimal"}
            }
        },
        "domain.InvoiceLine": {
            "type": "object",
            "properties": {
                "tripID": {"type": "string"},
                "freightAmount": {"$ref": "#/definitions/decimal"},
                "shortageAmount": {"$ref": "#/definitions/decimal"},
                "totalAmount": {"$ref": "#/definitions/decimal"}
            }
        },
        "domain.InvoiceSummary": {
            "type": "object",
            "properties": {
                "totalAmountBeforeTax": {"$ref": "#/definitions/decimal"},
                "totalFreightAmount": {"$ref": "#/definitions/decimal"},
                "totalShortageAmount": {"$ref": "#/definitions/decimal"},
                "totalFreightWeight": {"$ref": "#/definitions/decimal"},
                "totalShortageWeight": {"$ref": "#/definitions/decimal"},
                "taxRate": {"$ref": "#/definitions/decimal"},
                "taxAmount": {"$ref": "#/definitions/decimal"},
                "totalAfterTax": {"$ref": "#/definitions/decimal"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/domain.InvoiceLine"}}
            }
        },
        "dto.ExpenseRequest": {
            "type": "object",
            "required": ["expenseType"],
            "properties": {
                "amount": {"$ref": "#/definitions/decimal"},
                "expenseType": {"type": "string", "example": "driver-salary"}
            }
        },
        "dto.TripRecordRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "maxLength": 64},
                "freightRate": {"$ref": "#/definitions/decimal"},
                "commissionRate": {"$ref": "#/definitions/decimal"},
                "rate": {"$ref": "#/definitions/decimal"},
                "loadingWeight": {"$ref": "#/definitions/decimal"},
                "shortageAmount": {"$ref": "#/definitions/decimal"},
                "shortageWeight": {"$ref": "#/definitions/decimal"},
                "expenses": {"type": "array", "items": {"$ref": "#/definitions/dto.ExpenseRequest"}}
            }
        },
        "dto.TaxProfileRequest": {
            "type": "object",
            "properties": {
                "gstEnabled": {"type": "boolean"},
                "homeState": {"type": "string"},
                "tdsRate": {"$ref": "#/definitions/decimal"}
            }
        },
        "dto.AdditionalChargeRequest": {
            "type": "object",
            "required": ["label"],
            "properties": {
                "label": {"type": "string"},
                "amount": {"$ref": "#/definitions/decimal"}
            }
        },
        "dto.FreightLineRequest": {
            "type": "object",
            "properties": {
                "trip": {"$ref": "#/definitions/dto.TripRecordRequest"}
            }
        },
        "dto.TaxBreakupRequest": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/dto.TaxProfileRequest"},
                "taxableBase": {"$ref": "#/definitions/decimal"}
            }
        },
        "dto.TaxBreakupResponse": {
            "type": "object",
            "properties": {
                "regime": {"type": "string", "enum": ["INTRA_STATE", "INTER_STATE", "GST_EXEMPT"]},
                "cgst": {"$ref": "#/definitions/domain.TaxLeg"},
                "sgst": {"$ref": "#/definitions/domain.TaxLeg"},
                "igst": {"$ref": "#/definitions/domain.TaxLeg"},
                "tds": {"$ref": "#/definitions/domain.TaxLeg"},
                "totalTaxDeducted": {"$ref": "#/definitions/decimal"}
            }
        },
        "dto.TransporterPaymentRequest": {
            "type": "object",
            "properties": {
                "trips": {"type": "array", "items": {"$ref": "#/definitions/dto.TripRecordRequest"}},
                "profile": {"$ref": "#/definitions/dto.TaxProfileRequest"},
                "additionalCharges": {"type": "array", "items": {"$ref": "#/definitions/dto.AdditionalChargeRequest"}}
            }
        },
        "dto.TransporterPaymentResponse": {
            "type": "object",
            "properties": {
                "regime": {"type": "string", "enum": ["INTRA_STATE", "INTER_STATE", "GST_EXEMPT"]},
                "tripCount": {"type": "integer"},
                "totalFreightAmount": {"$ref": "#/definitions/decimal"},
                "totalExpense": {"$ref": "#/definitions/decimal"},
                "totalShortageAmount": {"$ref": "#/definitions/decimal"},
                "preTaxIncome": {"$ref": "#/definitions/decimal"},
                "taxBreakup": {"$ref": "#/definitions/dto.TaxBreakupResponse"},
                "totalAdditionalCharges": {"$ref": "#/definitions/decimal"},
                "netIncome": {"$ref": "#/definitions/decimal"},
                "lines": {"type": "array", "items": {"$ref": "#/definitions/domain.FreightLine"}}
            }
        },
        "dto.SalaryComponentRequest": {
            "type": "object",
            "required": ["paymentType"],
            "properties": {
                "paymentType": {"type": "string", "example": "Fixed Salary"},
                "amount": {"$ref": "#/definitions/decimal"}
            }
        },
        "dto.LoanInstallmentRequest": {
            "type": "object",
            "properties": {
                "loanID": {"type": "string"},
                "installmentAmount": {"$ref": "#/definitions/decimal"}
            }
        },
        "dto.DriverPayslipRequest": {
            "type": "object",
            "required": ["driverID"],
            "properties": {
                "driverID": {"type": "string"},
                "subtripComponents": {"type": "array", "items": {"$ref": "#/definitions/dto.TripRecordRequest"}},
                "otherSalaryComponents": {"type": "array", "items": {"$ref": "#/definitions/dto.SalaryComponentRequest"}},
                "selectedLoans": {"type": "array", "items": {"$ref": "#/definitions/dto.LoanInstallmentRequest"}}
            }
        },
        "dto.CustomerInvoiceRequest": {
            "type": "object",
            "required": ["invoicedSubtrips"],
            "properties": {
                "invoicedSubtrips": {"type": "array", "items": {"$ref": "#/definitions/dto.TripRecordRequest"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fleet Billing API",
	Description:      "Computes freight lines, tax breakups, transporter payments, driver payslips and customer invoices.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
