package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"timetablegen/pkg/model"
)

func handleListTimetables(ctx *gin.Context) {
	files, err := os.ReadDir(GeneratedDir)
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	var allIDs []string = []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(file.Name(), "-timetable.csv")
		if ok {
			allIDs = append(allIDs, id)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"timetableIds": allIDs,
	})
}

func handleGetTimetable(ctx *gin.Context) {
	id := ctx.Param("id")
	filePath := GeneratedDir + id + "-timetable.csv"

	content, err := os.ReadFile(filePath)
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": string(content),
	})
}

func handleCreateTimetable(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	if len(form.File["courses"]) == 0 {
		ctx.String(http.StatusBadRequest, "missing courses file")
		return
	}
	coursesFile := form.File["courses"][0]

	days, err := strconv.Atoi(ctx.DefaultPostForm("days", "5"))
	if err != nil || days < 1 {
		ctx.String(http.StatusBadRequest, "days must be a positive integer")
		return
	}
	start := ctx.DefaultPostForm("start", "9am")
	end := ctx.DefaultPostForm("end", "5pm")

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	coursesPath := UploadDir + timestamp + coursesFile.Filename
	if err := ctx.SaveUploadedFile(coursesFile, coursesPath); err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}
	exportFile := GeneratedDir + timestamp + "-timetable.csv"

	if err := createAndExportTimetable(coursesPath, exportFile, days, start, end); err != nil {
		var schemaErr *model.SchemaError
		var formatErr *model.TimeFormatError
		var placementErr *model.PlacementError
		switch {
		case errors.As(err, &schemaErr), errors.As(err, &formatErr):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &placementErr):
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id": timestamp,
	})
}
