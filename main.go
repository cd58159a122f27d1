/*
Package main is the timeaxis command: a historical timeline axis whose tick labels carry the
proleptic Gregorian date and, on day-level domains, the proleptic Julian date.

Commands:

	timeaxis render   draw the axis to SVG, optionally highlighting a clicked or typed period
	timeaxis ticks    print the ticks of a domain with their labels
	timeaxis convert  show the Gregorian and Julian forms of dates
	timeaxis select   resolve a click to a period and print its summary request as JSON
*/
package main

import "timeaxis/internal/cli"

func main() {
	cli.Execute()
}
