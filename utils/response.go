package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers return either the entity itself or, on failure, a single
// {"error": message} body; there is no envelope around success payloads.

// JSON writes v with the given status code.
func JSON(ctx *gin.Context, status int, v interface{}) {
	ctx.JSON(status, v)
}

// Created writes v with a 201 status.
func Created(ctx *gin.Context, v interface{}) {
	ctx.JSON(http.StatusCreated, v)
}

// Message writes a 200 response with a message body.
func Message(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, gin.H{"message": message})
}

// Error writes a standard error response.
func Error(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"error": message})
}
