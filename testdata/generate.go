package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Employee struct {
	ID     int64    `parquet:"id"`
	Name   string   `parquet:"name"`
	Age    int32    `parquet:"age"`
	Role   string   `parquet:"role"`
	Salary *float64 `parquet:"salary,optional"`
}

func f(v float64) *float64 { return &v }

func main() {
	employees := []Employee{
		{ID: 1, Name: "alice", Age: 30, Role: "Engineer", Salary: f(95000)},
		{ID: 2, Name: "bob", Age: 25, Role: "Analyst", Salary: nil},
		{ID: 3, Name: "charlie", Age: 35, Role: "Engineer", Salary: f(105000)},
		{ID: 4, Name: "diana", Age: 28, Role: "Designer", Salary: f(88000)},
		{ID: 5, Name: "eve", Age: 42, Role: "Manager", Salary: f(120000)},
	}

	file, err := os.Create("employees.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Employee](file)
	defer writer.Close()

	if _, err := writer.Write(employees); err != nil {
		log.Fatal(err)
	}

	csvData := "name,age,role\nalice,30,Engineer\nbob,25,Analyst\ncharlie,35,Engineer\ndiana,28,Designer\neve,42,Manager\n"
	if err := os.WriteFile("employees.csv", []byte(csvData), 0o644); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated employees.parquet and employees.csv with 5 rows")
}
