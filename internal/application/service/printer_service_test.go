package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sangkips/hospitality-pos/pkg/printer"
)

func TestPrintInvoice(t *testing.T) {
	f := newInvoiceFixture(t, standaloneSettings())
	rec := &printer.Recorder{}
	svc := NewPrinterService(rec, f.svc, "network", 48)

	doc, err := svc.PrintInvoice(outletCtx(), f.orderID, InvoiceOptions{})
	if err != nil {
		t.Fatalf("PrintInvoice: %v", err)
	}
	jobs := rec.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("printed %d jobs", len(jobs))
	}
	if !bytes.Contains(jobs[0], []byte(doc.Invoice.InvoiceNo)) {
		t.Errorf("invoice number missing from print job")
	}
	if !bytes.Contains(jobs[0], []byte("Spice Route")) {
		t.Errorf("company name missing from print job")
	}
}

func TestPrintInvoice_PrinterFailureReturnsDocument(t *testing.T) {
	f := newInvoiceFixture(t, standaloneSettings())
	rec := &printer.Recorder{Err: errors.New("paper out")}
	svc := NewPrinterService(rec, f.svc, "usb", 32)

	doc, err := svc.PrintInvoice(outletCtx(), f.orderID, InvoiceOptions{})
	if err == nil {
		t.Fatal("expected print error")
	}
	if doc == nil || doc.Invoice == nil {
		t.Fatal("document not returned")
	}
	if status := svc.GetStatus(); status.Connected || !status.Configured {
		t.Errorf("status: got %+v", status)
	}
}

func TestTestPrint(t *testing.T) {
	rec := &printer.Recorder{}
	svc := NewPrinterService(rec, nil, "none", 32)

	if err := svc.TestPrint(context.Background()); err != nil {
		t.Fatalf("TestPrint: %v", err)
	}
	if len(rec.Jobs()) != 1 {
		t.Errorf("printed %d jobs", len(rec.Jobs()))
	}
	if svc.GetStatus().Configured {
		t.Errorf("printer type none reported as configured")
	}
}
