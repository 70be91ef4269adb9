package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PaginasAPITotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopee_api_paginas_total",
			Help: "Total de páginas consultadas na API de categorias",
		},
	)
	ErrosAPITotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "shopee_api_erros_total",
			Help: "Total de erros ao consultar a API de categorias",
		},
	)
	CategoriasExtraidas = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "categorias_extraidas_total",
			Help: "Total de categorias extraídas na execução",
		},
	)
)

func Start(port string) {
	prometheus.MustRegister(PaginasAPITotal, ErrosAPITotal, CategoriasExtraidas)
	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":"+port, nil)
}
