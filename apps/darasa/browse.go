package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) courses() error {
	courses, err := cli.app.API.Courses.List(context.Background(), nil)
	if err != nil {
		return err
	}
	if len(courses) == 0 {
		fmt.Fprintln(cli.out, "No courses")
		return nil
	}
	for _, course := range courses {
		fmt.Fprintf(cli.out, "%6d  %-40s %-20s %d students\n",
			course.ID, course.Title, course.TeacherName, course.StudentCount)
	}
	return nil
}

func (cli *commandLine) notifications() error {
	ctx := context.Background()
	summary, err := cli.app.API.Notifications.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d notifications, %d unread\n", summary.Total, summary.Unread)

	list, err := cli.app.API.Notifications.List(ctx, nil)
	if err != nil {
		return err
	}
	for _, n := range list {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Fprintf(cli.out, "%s %6d  %s\n", marker, n.ID, n.Title)
	}
	return nil
}

// open routes a page transition through the guard; where the user actually
// lands depends on their session.
func (cli *commandLine) open(path string) error {
	cli.app.Router.Push(path)
	fmt.Fprintf(cli.out, "At %s\n", cli.app.Router.Current())
	return nil
}
