package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Loan Reschedule API",
        "description": "Read access to loan reschedule requests, their term variations and lookup data",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [
        {"BearerAuth": []}
    ],
    "tags": [
        {"name": "Reschedule", "description": "Loan reschedule requests"}
    ],
    "paths": {
        "/rescheduleloans/template": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "Reschedule request template",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RescheduleRequestEnvelope"}}
                }
            }
        },
        "/rescheduleloans": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "List reschedule requests by status",
                "parameters": [
                    {"name": "command", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected", "all"]},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RescheduleRequestListEnvelope"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/rescheduleloans/export": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "Export reschedule requests",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "command", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected", "all"]},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download", "schema": {"type": "file"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/rescheduleloans/{id}": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "Get reschedule request detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RescheduleRequestEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/loans/{loanId}/rescheduleloans": {
            "get": {
                "tags": ["Reschedule"],
                "summary": "List reschedule requests of a loan",
                "parameters": [
                    {"name": "loanId", "in": "path", "required": true, "type": "integer"},
                    {"name": "command", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected", "all"]},
                    {"name": "limit", "in": "query", "type": "integer"},
                    {"name": "offset", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RescheduleRequestListEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "EnumOption": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "CodeValue": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "position": {"type": "integer"},
                "active": {"type": "boolean"},
                "mandatory": {"type": "boolean"}
            }
        },
        "RescheduleRequestStatus": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "code": {"type": "string"},
                "value": {"type": "string"},
                "pendingApproval": {"type": "boolean"},
                "approved": {"type": "boolean"},
                "rejected": {"type": "boolean"}
            }
        },
        "RescheduleRequestTimeline": {
            "type": "object",
            "properties": {
                "submittedOnDate": {"type": "string", "format": "date"},
                "submittedByUsername": {"type": "string"},
                "submittedByFirstname": {"type": "string"},
                "submittedByLastname": {"type": "string"},
                "approvedOnDate": {"type": "string", "format": "date"},
                "approvedByUsername": {"type": "string"},
                "approvedByFirstname": {"type": "string"},
                "approvedByLastname": {"type": "string"},
                "rejectedOnDate": {"type": "string", "format": "date"},
                "rejectedByUsername": {"type": "string"},
                "rejectedByFirstname": {"type": "string"},
                "rejectedByLastname": {"type": "string"}
            }
        },
        "LoanTermVariation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "termType": {"$ref": "#/definitions/EnumOption"},
                "termVariationApplicableFrom": {"type": "string", "format": "date"},
                "decimalValue": {"type": "string"},
                "dateValue": {"type": "string", "format": "date"},
                "isSpecificToInstallment": {"type": "boolean"}
            }
        },
        "RescheduleRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "loanId": {"type": "integer"},
                "clientId": {"type": "integer"},
                "clientName": {"type": "string"},
                "loanAccountNumber": {"type": "string"},
                "statusEnum": {"$ref": "#/definitions/RescheduleRequestStatus"},
                "rescheduleFromInstallment": {"type": "integer"},
                "rescheduleFromDate": {"type": "string", "format": "date"},
                "recalculateInterest": {"type": "boolean"},
                "rescheduleReasonCodeValue": {"$ref": "#/definitions/CodeValue"},
                "timeline": {"$ref": "#/definitions/RescheduleRequestTimeline"},
                "rescheduleReasonComment": {"type": "string"},
                "changeSchedule": {"type": "boolean"},
                "repayEvery": {"type": "integer"},
                "repaymentPeriodFrequencyType": {"$ref": "#/definitions/EnumOption"},
                "firstDateForSemi": {"type": "string", "format": "date"},
                "secondDateForSemi": {"type": "string", "format": "date"},
                "rescheduleReasons": {"type": "array", "items": {"$ref": "#/definitions/CodeValue"}},
                "loanTermVariationsData": {"type": "array", "items": {"$ref": "#/definitions/LoanTermVariation"}},
                "repaymentFrequencyTypeOptions": {"type": "array", "items": {"$ref": "#/definitions/EnumOption"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "RescheduleRequestEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/RescheduleRequest"},
                "meta": {"type": "object"}
            }
        },
        "RescheduleRequestListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/RescheduleRequest"}},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
